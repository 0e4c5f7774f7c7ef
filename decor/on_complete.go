package decor

var (
	_ Decorator = onCompleteWrapper{}
	_ Wrapper   = onCompleteWrapper{}
)

// OnComplete wrap decorator.
// Displays provided message once bar is closed normally.
//
//	`decorator` Decorator to wrap
//	`message` message to display
func OnComplete(decorator Decorator, message string) Decorator {
	if decorator == nil {
		return nil
	}
	return onCompleteWrapper{decorator, message}
}

type onCompleteWrapper struct {
	Decorator
	msg string
}

func (d onCompleteWrapper) Decor(s Statistics) (string, int) {
	if s.Completed {
		return WC{}.Format(d.msg)
	}
	return d.Decorator.Decor(s)
}

func (d onCompleteWrapper) Unwrap() Decorator {
	return d.Decorator
}
