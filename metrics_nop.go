package streamstore

// NopMetrics is default Metrics handler in case nil is passed
var NopMetrics Metrics = &nopMetrics{}

type nopMetrics struct{}

func (nm *nopMetrics) StreamWritten(string, int) {}
func (nm *nopMetrics) StreamWriteConflicted(string) {}
func (nm *nopMetrics) StreamRead(ReadDirection, int) {}
func (nm *nopMetrics) CategoryRead(int) {}
