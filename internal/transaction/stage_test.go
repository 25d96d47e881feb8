package transaction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/realty/internal/transaction"
)

func TestStageNext(t *testing.T) {
	tests := []struct {
		name    string
		current transaction.Stage
		want    transaction.Stage
	}{
		{name: "AgreementToEarnestMoney", current: transaction.StageAgreement, want: transaction.StageEarnestMoney},
		{name: "EarnestMoneyToTitleDeed", current: transaction.StageEarnestMoney, want: transaction.StageTitleDeed},
		{name: "TitleDeedToCompleted", current: transaction.StageTitleDeed, want: transaction.StageCompleted},
		{name: "CompletedStaysCompleted", current: transaction.StageCompleted, want: transaction.StageCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.current.Next())
		})
	}
}

func TestStageOrderIsStrict(t *testing.T) {
	// Walking from the start must pass through every stage exactly once.
	order := []transaction.Stage{
		transaction.StageAgreement,
		transaction.StageEarnestMoney,
		transaction.StageTitleDeed,
		transaction.StageCompleted,
	}

	current := transaction.StageAgreement
	for i := 1; i < len(order); i++ {
		current = current.Next()
		assert.Equal(t, order[i], current)
	}

	assert.True(t, current.Terminal())
}

func TestStageValid(t *testing.T) {
	assert.True(t, transaction.StageAgreement.Valid())
	assert.True(t, transaction.StageCompleted.Valid())
	assert.False(t, transaction.Stage("ESCROW").Valid())
}
