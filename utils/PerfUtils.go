package utils

import (
	"time"

	log "github.com/sirupsen/logrus"
)

func PerfLog(started time.Time, thresholdMs int64, str string) {
	timeMs := time.Since(started).Milliseconds()
	if timeMs > thresholdMs {
		log.Warnf("PERF: "+str+" took %d ms more than expected (%d ms)", timeMs, thresholdMs)
	} else {
		log.Debugf("PERF: "+str+" took %dms", timeMs)
	}
}
