package logging

import "github.com/rs/zerolog"

// Logging holds a zerolog.Logger decorated by f. Until SetLogger is called,
// the logger is zerolog.Nop().
type Logging struct {
	l    zerolog.Logger
	orig zerolog.Logger
	f    func(zerolog.Context) zerolog.Context
}

func NewLogging(f func(zerolog.Context) zerolog.Context) *Logging {
	nop := zerolog.Nop()

	return &Logging{
		l:    nop,
		orig: nop,
		f:    f,
	}
}

func (lg *Logging) Log() *zerolog.Logger {
	return &lg.l
}

func (lg *Logging) SetLogger(l zerolog.Logger) *Logging {
	lg.orig = l
	if lg.f != nil {
		lg.l = lg.f(lg.orig.With()).Logger()
	} else {
		lg.l = l
	}

	return lg
}

// SetLogging shares the undecorated logger of l, keeping the own decoration.
func (lg *Logging) SetLogging(l *Logging) *Logging {
	return lg.SetLogger(l.orig)
}

func (lg *Logging) IsTraceLog() bool {
	return lg.l.GetLevel() == zerolog.TraceLevel
}
