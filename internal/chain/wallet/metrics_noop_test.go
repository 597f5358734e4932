package wallet

import "time"

type noopMetrics struct{}

func (noopMetrics) ObserveCoverFee(error, time.Time) {}
func (noopMetrics) ObserveSign(time.Time)            {}
