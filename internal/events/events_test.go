package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func TestNew(t *testing.T) {
	a := New(TypeTransferCompleted, TransferPayload{TransferID: "t1"}, testTime)
	b := New(TypeTransferCompleted, TransferPayload{TransferID: "t1"}, testTime)

	assert.NotEmpty(t, a.EventID)
	assert.NotEqual(t, a.EventID, b.EventID)
	assert.Equal(t, testTime, a.Timestamp)
}
