// Package bench measures filesystem-layer latency.
//
// The write benchmark creates one fresh file per sample inside a newly created
// working directory and times the create, write and close of each file:
//
//	s := bench.NewSampler(".testing", 1024, 1000)
//	samples, err := s.Run()
//	if err != nil {
//	    return err
//	}
//
// Files are left on disk after the run. Any I/O failure aborts the run and is
// reported as an *IOError; no partial sample set is returned.
//
// The read benchmark reads (or maps) an existing file and folds its contents
// into a 64-bit checksum so the data is actually touched.
package bench
