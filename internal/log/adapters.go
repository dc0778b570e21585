package log

import "fmt"

// CronLogger satisfies robfig/cron's Logger interface.
type CronLogger struct{}

func (CronLogger) Info(msg string, keysAndValues ...any) {
	Debug("cron: "+msg, keysAndValues...)
}

func (CronLogger) Error(err error, msg string, keysAndValues ...any) {
	Error("cron: "+msg, err, keysAndValues...)
}

// RestyLogger satisfies go-resty's Logger interface.
type RestyLogger struct{}

func (RestyLogger) Errorf(format string, v ...any) {
	Error("http client", fmt.Errorf(format, v...))
}

func (RestyLogger) Warnf(format string, v ...any) {
	Warn("http client: " + fmt.Sprintf(format, v...))
}

func (RestyLogger) Debugf(format string, v ...any) {
	Debug("http client: " + fmt.Sprintf(format, v...))
}
