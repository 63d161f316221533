package worker

import (
	"github.com/spec-kit/hrdesk/internal/service"
)

// StartSinkWorker registers ticket delivery handlers on the dispatcher.
func StartSinkWorker(sinkService *service.SinkService) {
	if sinkService == nil {
		return
	}
	sinkService.RegisterHandlers()
}
