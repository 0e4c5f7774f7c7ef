// Package iterbar decorates iteration with a console progress line.
//
// A Bar counts consumed items and, no more often than its minimum
// interval, rewrites one status line on its output (os.Stderr by
// default):
//
//	Processing:  45%|████████████▌              | 45/100 [00:02<00:03, 20.10it/s]
//
// Wrap any iter.Seq to get an equivalent sequence with progress:
//
//	for v := range iterbar.Wrap(seq, iterbar.WithTotal(100)) {
//		...
//	}
//
// or drive a Bar manually:
//
//	bar := iterbar.New(100, iterbar.WithDescription("Manual control"))
//	defer bar.Close()
//	for i := 0; i < 10; i++ {
//		bar.IncrBy(10)
//	}
//
// A Bar is safe for concurrent use. Bars are independent of each other;
// a Progress container only hands out display positions, so several
// bars can share one terminal.
package iterbar
