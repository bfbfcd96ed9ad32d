package logger_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxc-go/oxc-core/internal/logger"
)

func TestDoneSortsByPosition(t *testing.T) {
	log := logger.NewLog()
	src := &logger.Source{PrettyPath: "a.js", Contents: "const a = 1\nconst b = 2\n"}

	log.AddError(src, logger.RangeFromSpan(13, 14), logger.KindSyntax, "second")
	log.AddError(src, logger.RangeFromSpan(0, 1), logger.KindSyntax, "first")

	msgs := log.Done()
	require.Len(t, msgs, 2)
	require.Equal(t, "first", msgs[0].Data.Text)
	require.Equal(t, "second", msgs[1].Data.Text)
}

func TestFingerprintStable(t *testing.T) {
	src := &logger.Source{PrettyPath: "a.js", Contents: "x"}
	loc := src.LocationForRange(logger.RangeFromSpan(0, 1))
	m1 := logger.Msg{RuleId: "no-foo", Data: logger.MsgData{Text: "bad", Location: loc}}
	m2 := logger.Msg{RuleId: "no-foo", Data: logger.MsgData{Text: "bad", Location: loc}}
	require.Equal(t, m1.Fingerprint(), m2.Fingerprint())
}
