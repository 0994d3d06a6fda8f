package gateway

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"hotel-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestVNPay(t *testing.T) *VNPay {
	t.Helper()
	return NewVNPay(utils.VNPayConfig{
		TmnCode:    "TESTCODE",
		HashSecret: "test-secret",
		BaseURL:    "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
		ReturnURL:  "https://example.com/api/payments/vnpay/callback",
	}, time.UTC, zap.NewNop())
}

func TestVNPayBuildPaymentURL(t *testing.T) {
	v := newTestVNPay(t)

	rawURL, err := v.BuildPaymentURL(1_250_000, "TXN123", "Hotel payment TXN123", "203.0.113.7")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(rawURL, "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html?"))

	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)
	params := parsed.Query()

	assert.Equal(t, "2.1.0", params.Get("vnp_Version"))
	assert.Equal(t, "TESTCODE", params.Get("vnp_TmnCode"))
	// Amount goes out in minor units.
	assert.Equal(t, "125000000", params.Get("vnp_Amount"))
	assert.Equal(t, "TXN123", params.Get("vnp_TxnRef"))
	assert.NotEmpty(t, params.Get("vnp_SecureHash"))

	// The signature over the outgoing parameters must verify with the
	// same secret.
	txnRef, _, err := v.VerifyCallback(params)
	require.NoError(t, err)
	assert.Equal(t, "TXN123", txnRef)
}

func TestVNPayBuildPaymentURLUnconfigured(t *testing.T) {
	v := NewVNPay(utils.VNPayConfig{}, time.UTC, zap.NewNop())

	_, err := v.BuildPaymentURL(100, "TXN", "info", "127.0.0.1")
	assert.Error(t, err)
}

func TestVNPayVerifyCallback(t *testing.T) {
	v := newTestVNPay(t)

	signedParams := func(responseCode, txnStatus string) url.Values {
		params := url.Values{}
		params.Set("vnp_TmnCode", "TESTCODE")
		params.Set("vnp_TxnRef", "TXN456")
		params.Set("vnp_Amount", "125000000")
		params.Set("vnp_ResponseCode", responseCode)
		params.Set("vnp_TransactionStatus", txnStatus)
		params.Set("vnp_SecureHash", v.sign(params.Encode()))
		return params
	}

	t.Run("success", func(t *testing.T) {
		txnRef, success, err := v.VerifyCallback(signedParams("00", "00"))
		require.NoError(t, err)
		assert.Equal(t, "TXN456", txnRef)
		assert.True(t, success)
	})

	t.Run("provider reported failure", func(t *testing.T) {
		txnRef, success, err := v.VerifyCallback(signedParams("24", "02"))
		require.NoError(t, err)
		assert.Equal(t, "TXN456", txnRef)
		assert.False(t, success)
	})

	t.Run("both codes must be 00", func(t *testing.T) {
		_, success, err := v.VerifyCallback(signedParams("00", "02"))
		require.NoError(t, err)
		assert.False(t, success)
	})

	t.Run("tampered parameters", func(t *testing.T) {
		params := signedParams("00", "00")
		params.Set("vnp_Amount", "1")

		_, _, err := v.VerifyCallback(params)
		assert.Error(t, err)
	})

	t.Run("missing signature", func(t *testing.T) {
		params := url.Values{}
		params.Set("vnp_TxnRef", "TXN456")

		_, _, err := v.VerifyCallback(params)
		assert.Error(t, err)
	})

	t.Run("hash type field is excluded from signing", func(t *testing.T) {
		params := signedParams("00", "00")
		params.Set("vnp_SecureHashType", "HmacSHA512")

		_, success, err := v.VerifyCallback(params)
		require.NoError(t, err)
		assert.True(t, success)
	})
}
