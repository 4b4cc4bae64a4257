package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/danunant/bbank/internal/format"
	"github.com/danunant/bbank/internal/models"
)

// ParseAmountSatang converts user-typed baht amounts into satang. It accepts
// plain numbers ("150", "99.50"), grouped digits ("1,250.00") and a leading
// currency sign. More than two decimal places is an error because satang is
// the smallest unit.
func ParseAmountSatang(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "฿")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("amount is empty")
	}

	whole, frac, found := strings.Cut(s, ".")
	baht, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	var satang int64
	if found {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, fmt.Errorf("amount %q must have at most two decimal places", s)
		}
		if len(frac) == 1 {
			frac += "0"
		}
		satang, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
	}

	if strings.HasPrefix(whole, "-") {
		return baht*100 - satang, nil
	}
	return baht*100 + satang, nil
}

// RenderReceipt writes a text receipt for one committed transfer.
func RenderReceipt(w io.Writer, txn *models.Txn) {
	fmt.Fprintln(w, "---------- Transfer Receipt ----------")
	fmt.Fprintf(w, "Reference:   %s\n", txn.ID)
	fmt.Fprintf(w, "Date:        %s\n", format.Timestamp(txn.At))
	if txn.FromOwnerName != "" {
		fmt.Fprintf(w, "From:        %s\n", txn.FromOwnerName)
	}
	if txn.ToOwnerName != "" {
		fmt.Fprintf(w, "To:          %s\n", txn.ToOwnerName)
	}
	fmt.Fprintf(w, "Amount:      %s\n", format.THB(txn.AmountSatang))
	fmt.Fprintf(w, "Description: %s\n", txn.Description)
	fmt.Fprintln(w, "--------------------------------------")
}
