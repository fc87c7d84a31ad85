package finpension

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestExpandDiscardsUncategorizedRows(t *testing.T) {
	for _, category := range []string{"", "   "} {
		legs, err := Expand(record("2024-01-15", category, "1000", "", "", ""), Options{HoldingAccount: "pillar3a"})
		if err != nil {
			t.Fatalf("Expand(category=%q) returned error: %v", category, err)
		}
		if len(legs) != 0 {
			t.Errorf("Expand(category=%q) = %d legs, want 0", category, len(legs))
		}
	}
}

func TestExpandTransfer(t *testing.T) {
	tests := []struct {
		name     string
		cashFlow string
		holding  string
		want     Activity
	}{
		{
			name:     "deposit",
			cashFlow: "500",
			holding:  "pillar3a",
			want: Activity{
				Date: "2024-01-15", Amount: amountOf(d("500")), Price: d("1"), Shares: d("500"),
				Type: KindTransferIn, Currency: "CHF", Holding: "pillar3a",
			},
		},
		{
			name:     "withdrawal keeps sign",
			cashFlow: "-250.40",
			holding:  "pillar3a",
			want: Activity{
				Date: "2024-01-15", Amount: amountOf(d("-250.40")), Price: d("1"), Shares: d("-250.40"),
				Type: KindTransferOut, Currency: "CHF", Holding: "pillar3a",
			},
		},
		{
			name:     "no holding account",
			cashFlow: "500",
			holding:  "",
			want: Activity{
				Date: "2024-01-15", Amount: amountOf(d("500")), Price: d("1"), Shares: d("500"),
				Type: KindTransferIn, Currency: "CHF",
			},
		},
		{
			name:     "unparseable cash flow counts as zero",
			cashFlow: "NaN",
			holding:  "pillar3a",
			want: Activity{
				Date: "2024-01-15", Amount: amountOf(d("0")), Price: d("1"), Shares: d("0"),
				Type: KindTransferIn, Currency: "CHF", Holding: "pillar3a",
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := record("2024-01-15", "Transfer", tc.cashFlow, "", "", "")
			legs, err := Expand(rec, Options{HoldingAccount: tc.holding})
			if err != nil {
				t.Fatalf("Expand returned error: %v", err)
			}
			if len(legs) != 1 {
				t.Fatalf("Expand = %d legs, want 1", len(legs))
			}
			if !legs[0].Equal(tc.want) {
				t.Errorf("Expand leg = %+v, want %+v", legs[0], tc.want)
			}
		})
	}
}

func TestExpandDividend(t *testing.T) {
	rec := record("2024-03-28", "Dividend", "12.35", "", "", "IE00B4L5Y983")
	legs, err := Expand(rec, Options{HoldingAccount: "pillar3a"})
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	if len(legs) != 2 {
		t.Fatalf("Expand = %d legs, want 2", len(legs))
	}

	funding := Activity{
		Date: "2024-03-28", Amount: amountOf(d("12.35")), Price: d("1"), Shares: d("12.35"),
		Type: KindTransferIn, Currency: "CHF", Holding: "pillar3a",
	}
	if !legs[0].Equal(funding) {
		t.Errorf("funding leg = %+v, want %+v", legs[0], funding)
	}

	dividend := Activity{
		Date: "2024-03-28", Amount: amountOf(d("12.35")), Price: d("12.35"), Shares: d("1"),
		Type: KindDividend, ISIN: "IE00B4L5Y983", Currency: "CHF",
	}
	if !legs[1].Equal(dividend) {
		t.Errorf("dividend leg = %+v, want %+v", legs[1], dividend)
	}
}

func TestExpandBuy(t *testing.T) {
	rec := record("2024-01-16", "Buy", "-1000.50", "100.05", "10", "IE00B4L5Y983")
	legs, err := Expand(rec, Options{HoldingAccount: "pillar3a"})
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	if len(legs) != 2 {
		t.Fatalf("Expand = %d legs, want 2", len(legs))
	}

	// The funding leg books the absolute cash flow out of the account.
	funding := Activity{
		Date: "2024-01-16", Amount: amountOf(d("1000.50")), Price: d("1"), Shares: d("1000.50"),
		Type: KindTransferOut, Currency: "CHF", Holding: "pillar3a",
	}
	if !legs[0].Equal(funding) {
		t.Errorf("funding leg = %+v, want %+v", legs[0], funding)
	}

	// The trade leg leaves the amount cell blank.
	trade := Activity{
		Date: "2024-01-16", Price: d("100.05"), Shares: d("10"),
		Type: KindBuy, ISIN: "IE00B4L5Y983", Currency: "CHF",
	}
	if !legs[1].Equal(trade) {
		t.Errorf("trade leg = %+v, want %+v", legs[1], trade)
	}
	if legs[1].Amount.Valid {
		t.Error("trade leg amount must be blank, not zero")
	}
}

func TestExpandSell(t *testing.T) {
	rec := record("2024-05-02", "Sell", "480.20", "96.04", "5", "IE00B4L5Y983")
	legs, err := Expand(rec, Options{HoldingAccount: "pillar3a"})
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	if len(legs) != 2 {
		t.Fatalf("Expand = %d legs, want 2", len(legs))
	}
	if legs[0].Type != KindTransferOut || !legs[0].Shares.Equal(d("480.20")) {
		t.Errorf("funding leg = %+v, want TransferOut of 480.20", legs[0])
	}
	if legs[1].Type != KindSell {
		t.Errorf("trade leg type = %q, want %q", legs[1].Type, KindSell)
	}
}

func TestExpandPassthroughTakesTradePath(t *testing.T) {
	rec := record("2024-06-01", "Fees", "-2.55", "1", "2.55", "")
	legs, err := Expand(rec, Options{HoldingAccount: "pillar3a"})
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	if len(legs) != 2 {
		t.Fatalf("Expand = %d legs, want 2", len(legs))
	}
	if legs[0].Type != KindTransferOut {
		t.Errorf("funding leg type = %q, want %q", legs[0].Type, KindTransferOut)
	}
	if legs[1].Type != Kind("Fees") {
		t.Errorf("detail leg type = %q, want passthrough %q", legs[1].Type, "Fees")
	}
	if legs[1].Amount.Valid {
		t.Error("passthrough detail leg amount must be blank")
	}
}

func TestExpandTradeRequiresPriceAndShares(t *testing.T) {
	tests := []struct {
		name      string
		price     string
		shares    string
		wantField string
	}{
		{"missing price", "", "10", FieldAssetPrice},
		{"garbage price", "n/a", "10", FieldAssetPrice},
		{"missing shares", "100.05", "", FieldShares},
		{"garbage shares", "100.05", "ten", FieldShares},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := record("2024-01-16", "Buy", "-1000.50", tc.price, tc.shares, "IE00B4L5Y983")
			_, err := Expand(rec, Options{})
			if err == nil {
				t.Fatal("Expand succeeded, want hard failure")
			}
			if !strings.Contains(err.Error(), tc.wantField) {
				t.Errorf("error %q does not name field %q", err, tc.wantField)
			}
		})
	}
}

func TestExpandFlat(t *testing.T) {
	opts := Options{HoldingAccount: "pillar3a", Flat: true}

	legs, err := Expand(record("2024-01-16", "Buy", "-1000.50", "100.05", "10", "IE00B4L5Y983"), opts)
	if err != nil || len(legs) != 1 {
		t.Fatalf("flat buy: legs=%d err=%v, want one trade leg", len(legs), err)
	}
	if legs[0].Type != KindBuy || legs[0].Amount.Valid {
		t.Errorf("flat buy leg = %+v, want blank-amount Buy", legs[0])
	}

	legs, err = Expand(record("2024-03-28", "Dividend", "12.35", "", "", "IE00B4L5Y983"), opts)
	if err != nil || len(legs) != 1 {
		t.Fatalf("flat dividend: legs=%d err=%v, want one dividend leg", len(legs), err)
	}
	if legs[0].Type != KindDividend {
		t.Errorf("flat dividend leg type = %q", legs[0].Type)
	}

	legs, err = Expand(record("2024-01-15", "Transfer", "500", "", "", ""), opts)
	if err != nil || len(legs) != 1 {
		t.Fatalf("flat transfer: legs=%d err=%v, want one leg", len(legs), err)
	}
	if legs[0].Type != KindTransferIn {
		t.Errorf("flat transfer leg type = %q", legs[0].Type)
	}

	// Flat mode drops legs, not validation.
	if _, err := Expand(record("2024-01-16", "Buy", "-1000.50", "", "10", ""), opts); err == nil {
		t.Error("flat buy without price succeeded, want hard failure")
	}
}

func TestExpandAllKeepsInputOrder(t *testing.T) {
	report := NewReport(
		record("2024-01-15", "Transfer", "1500", "", "", ""),
		record("", "", "", "", "", ""),
		record("2024-01-16", "Buy", "-1000.50", "100.05", "10", "IE00B4L5Y983"),
		record("2024-03-28", "Dividend", "12.35", "", "", "IE00B4L5Y983"),
	)
	activities, err := ExpandAll(report, Options{HoldingAccount: "pillar3a"})
	if err != nil {
		t.Fatalf("ExpandAll returned error: %v", err)
	}

	wantTypes := []Kind{KindTransferIn, KindTransferOut, KindBuy, KindTransferIn, KindDividend}
	if len(activities) != len(wantTypes) {
		t.Fatalf("ExpandAll = %d activities, want %d", len(activities), len(wantTypes))
	}
	for i, want := range wantTypes {
		if activities[i].Type != want {
			t.Errorf("activities[%d].Type = %q, want %q", i, activities[i].Type, want)
		}
	}
}

func TestExpandAllReportsFailingRow(t *testing.T) {
	report := NewReport(
		record("2024-01-15", "Transfer", "1500", "", "", ""),
		record("2024-01-16", "Buy", "-1000.50", "", "10", "IE00B4L5Y983"),
	)
	_, err := ExpandAll(report, Options{})
	if err == nil {
		t.Fatal("ExpandAll succeeded, want failure on row 2")
	}
	for _, want := range []string{"row 2", "2024-01-16", "Buy", FieldAssetPrice} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestExpandAllEmptyReport(t *testing.T) {
	activities, err := ExpandAll(NewReport(), Options{})
	if err != nil {
		t.Fatalf("ExpandAll returned error: %v", err)
	}
	if len(activities) != 0 {
		t.Errorf("ExpandAll = %d activities, want 0", len(activities))
	}
}

func TestTransferLegZeroValues(t *testing.T) {
	leg := transferLeg("2024-01-15", KindTransferIn, decimal.Zero, "pillar3a")
	if !leg.Tax.IsZero() || !leg.Fee.IsZero() {
		t.Error("tax and fee must be zero")
	}
	if !leg.Amount.Valid {
		t.Error("transfer amount must not be blank")
	}
}
