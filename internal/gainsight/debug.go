package gainsight

import (
	"github.com/go-resty/resty/v2"

	"github.com/dbsmedya/gsread/internal/logger"
)

// debugBodyLimit caps how much of a response body is written to the debug log.
const debugBodyLimit = 2000

// instrument logs every request/response exchange at debug level. The access
// key header is never logged.
func instrument(client *resty.Client, log *logger.Logger) {
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		log.Debugw("api exchange",
			"method", res.Request.Method,
			"url", res.Request.URL,
			"status", res.StatusCode(),
			"elapsed", res.Time(),
			"request", requestBody(res.Request),
			"response", snippet(res.Body(), debugBodyLimit),
		)
		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		log.Debugw("api exchange failed",
			"method", req.Method,
			"url", req.URL,
			"request", requestBody(req),
			"error", err,
		)
	})
}

func requestBody(req *resty.Request) string {
	switch b := req.Body.(type) {
	case []byte:
		return string(b)
	case string:
		return b
	default:
		return ""
	}
}
