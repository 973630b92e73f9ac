package logger

import (
	"fmt"
	"os"
	"sync"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const MAX_MESSAGES = 1000

type Options struct {
	Level      string `yaml:"level"`
	Encoding   string `yaml:"encoding"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Logger is a sugared zap logger that also keeps the most recent messages
// in memory for the on-screen overlay.
type Logger struct {
	*zap.SugaredLogger
	ring *ring
	file *lumberjack.Logger
}

func New(opts Options) (*Logger, error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, err
		}
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	var enc zapcore.Encoder
	if opts.Encoding == "json" {
		encCfg = zap.NewProductionEncoderConfig()
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}
	l := &Logger{ring: newRing(MAX_MESSAGES)}
	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.Lock(os.Stderr), level),
		&ringCore{LevelEnabler: level, ring: l.ring},
	}
	if opts.File != "" {
		l.file = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(l.file), level))
	}
	l.SugaredLogger = zap.New(zapcore.NewTee(cores...)).Sugar()
	return l, nil
}

// NewNop returns a logger that drops everything but still records messages.
func NewNop() *Logger {
	r := newRing(MAX_MESSAGES)
	core := &ringCore{LevelEnabler: zapcore.DebugLevel, ring: r}
	return &Logger{SugaredLogger: zap.New(core).Sugar(), ring: r}
}

// Count returns the number of messages kept.
func (l *Logger) Count() int {
	return l.ring.count()
}

// Text returns the i-th kept message, oldest first.
func (l *Logger) Text(i int) string {
	return l.ring.text(i)
}

// Reset drops the kept messages.
func (l *Logger) Reset() {
	l.ring.reset()
}

func (l *Logger) Close() error {
	_ = l.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

type ring struct {
	mu       sync.Mutex
	messages []string
	start    int
	n        int
}

func newRing(size int) *ring {
	return &ring{messages: make([]string, size)}
}

func (r *ring) add(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.n < len(r.messages) {
		r.messages[(r.start+r.n)%len(r.messages)] = msg
		r.n++
		return
	}
	r.messages[r.start] = msg
	r.start = (r.start + 1) % len(r.messages)
}

func (r *ring) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.n
}

func (r *ring) text(i int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i < 0 || i >= r.n {
		return ""
	}
	return r.messages[(r.start+i)%len(r.messages)]
}

func (r *ring) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.start, r.n = 0, 0
}

type ringCore struct {
	zapcore.LevelEnabler
	ring   *ring
	fields []zapcore.Field
}

func (c *ringCore) With(fields []zapcore.Field) zapcore.Core {
	return &ringCore{LevelEnabler: c.LevelEnabler, ring: c.ring, fields: append(c.fields[:len(c.fields):len(c.fields)], fields...)}
}

func (c *ringCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *ringCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	msg := ent.Level.CapitalString() + " " + ent.Message
	all := append(c.fields[:len(c.fields):len(c.fields)], fields...)
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range all {
		f.AddTo(enc)
	}
	// in the order the fields were given, the last value of a repeated key wins
	seen := make(map[string]bool, len(all))
	for _, f := range all {
		v, ok := enc.Fields[f.Key]
		if !ok || seen[f.Key] {
			continue
		}
		seen[f.Key] = true
		msg += " " + f.Key + "=" + fmt.Sprint(v)
	}
	c.ring.add(msg)
	return nil
}

func (c *ringCore) Sync() error { return nil }
