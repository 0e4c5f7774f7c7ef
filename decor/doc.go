// Copyright (C) 2016-2018 Vladimir Bauer
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package decor contains the pieces a status line of
"github.com/vbauerster/iterbar" is built from.

A Decorator receives an immutable Statistics snapshot on every render
and returns its text together with the text's display width. Most
decorators are stateless and can be shared among bars. The Format*
helpers are exported so custom decorators can reproduce the default
look, for example:

	bar := iterbar.New(100,
		iterbar.PrependDecorators(decor.Description(), decor.Percentage()),
		iterbar.AppendDecorators(decor.Any(func(s decor.Statistics) string {
			return " eta " + decor.FormatInterval(s.Elapsed)
		})),
	)
*/
package decor
