package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstello/SMS-finance-sub000/internal/model"
)

func TestStable_Deterministic(t *testing.T) {
	msg := model.RawMessage{
		Sender:     "BANCOLOMBIA",
		Body:       "Compraste $50.000 en EXITO",
		ReceivedAt: time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC),
	}

	first := Stable(msg)
	second := Stable(msg)

	assert.Equal(t, first, second)
	assert.Len(t, first, 32, "md5 hex digest")
}

func TestStable_SensitiveToEveryField(t *testing.T) {
	base := model.RawMessage{
		Sender:     "BANCOLOMBIA",
		Body:       "Compraste $50.000 en EXITO",
		ReceivedAt: time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC),
	}

	otherSender := base
	otherSender.Sender = "NEQUI"
	otherBody := base
	otherBody.Body = "Compraste $60.000 en EXITO"
	otherTime := base
	otherTime.ReceivedAt = base.ReceivedAt.Add(time.Millisecond)

	want := Stable(base)
	assert.NotEqual(t, want, Stable(otherSender))
	assert.NotEqual(t, want, Stable(otherBody))
	assert.NotEqual(t, want, Stable(otherTime))
}

func TestStable_IgnoresSubMillisecondPrecision(t *testing.T) {
	base := model.RawMessage{
		Sender:     "BANCOLOMBIA",
		Body:       "Pago exitoso",
		ReceivedAt: time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC),
	}
	jittered := base
	jittered.ReceivedAt = base.ReceivedAt.Add(500 * time.Microsecond)

	assert.Equal(t, Stable(base), Stable(jittered))
}

func TestNewRunID(t *testing.T) {
	a := NewRunID()
	b := NewRunID()

	require.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36, "canonical uuid form")
}
