package logsvc

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/abdelrhmanQ/shc2/core"
)

// ZapLogger is the development logger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

var _ core.Logger = (*ZapLogger)(nil)

func NewZapLogger(conf *core.Config) *ZapLogger {
	var l *zap.Logger
	var err error
	if conf.Debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		l = zap.NewNop()
	}
	return &ZapLogger{sugar: l.Sugar()}
}

func (l *ZapLogger) Debug(msg string, args ...interface{}) { l.sugar.Debugw(msg, kv(args)...) }
func (l *ZapLogger) Info(msg string, args ...interface{})  { l.sugar.Infow(msg, kv(args)...) }
func (l *ZapLogger) Warn(msg string, args ...interface{})  { l.sugar.Warnw(msg, kv(args)...) }
func (l *ZapLogger) Error(msg string, args ...interface{}) { l.sugar.Errorw(msg, kv(args)...) }

// kv turns loose args into zap keyed fields; errors get the "error" key,
// anything else is indexed.
func kv(args []interface{}) []interface{} {
	out := make([]interface{}, 0, 2*len(args))
	for i, arg := range args {
		if err, ok := arg.(error); ok {
			out = append(out, zap.Error(err))
			continue
		}
		out = append(out, zap.Any("arg"+strconv.Itoa(i), arg))
	}
	return out
}
