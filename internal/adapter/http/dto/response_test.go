package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/moneyledger/internal/domain"
)

func TestAccountFromDomain(t *testing.T) {
	account := domain.NewAccount("acc-1", decimal.RequireFromString("123.45"))

	resp := AccountFromDomain(account)
	if resp.ID != "acc-1" || resp.Balance.String() != "123.45" || !resp.CreatedAt.Equal(account.CreatedAt) {
		t.Fatalf("unexpected account response: %+v", resp)
	}

	body, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if raw["balance"] != "123.45" {
		t.Fatalf("expected balance to be encoded as a string, got %#v", raw["balance"])
	}
}

func TestWithdrawalStateResponseJSON(t *testing.T) {
	body, err := json.Marshal(WithdrawalStateResponse{ID: "w-1", State: domain.WithdrawalStateFailed})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if got := string(body); got != `{"id":"w-1","state":"FAILED"}` {
		t.Fatalf("unexpected body %s", got)
	}
}
