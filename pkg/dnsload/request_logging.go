package dnsload

import (
	"log"
	"time"
)

func logRequest(logger *log.Logger, workerID uint32, reqid uint16, qname string, err error, dur time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "fail"
	}
	logger.Printf("worker:[%v] reqid:[%d] qname:[%s] outcome:[%s] err:[%v] duration:[%v]",
		workerID, reqid, qname, outcome, err, dur)
}
