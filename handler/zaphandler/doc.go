// Package zaphandler provides a zapcore.Core backed by a flatlog Logger,
// so applications already instrumented with go.uber.org/zap can write
// flatlog's console and file lines.
//
//	log := zap.New(zaphandler.NewCore(flat, "app"))
//	log.Named("db").Warn("slow query", zap.Duration("took", d))
//
// zap levels map onto flatlog levels (Debug, Info, Warn and Error keep
// their names; DPanic, Panic and Fatal become SEVERE). The zap logger's
// name becomes the category.
package zaphandler
