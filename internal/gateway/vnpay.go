package gateway

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// PaymentGateway is the external payment-provider boundary: build a
// redirect URL for an unpaid payment and verify the provider's inbound
// confirmation callback.
type PaymentGateway interface {
	BuildPaymentURL(amount float64, txnRef, orderInfo, clientIP string) (string, error)
	VerifyCallback(params url.Values) (txnRef string, success bool, err error)
}

// VNPay signs requests with HMAC-SHA512 over the sorted, url-encoded
// parameter string, per the VNPay 2.1.0 merchant protocol.
type VNPay struct {
	config utils.VNPayConfig
	loc    *time.Location
	log    *zap.Logger
}

func NewVNPay(config utils.VNPayConfig, loc *time.Location, log *zap.Logger) *VNPay {
	return &VNPay{
		config: config,
		loc:    loc,
		log:    log.With(zap.String("gateway", "vnpay")),
	}
}

func (v *VNPay) BuildPaymentURL(amount float64, txnRef, orderInfo, clientIP string) (string, error) {
	if v.config.TmnCode == "" || v.config.HashSecret == "" {
		return "", fmt.Errorf("vnpay credentials not configured")
	}

	params := url.Values{}
	params.Set("vnp_Version", "2.1.0")
	params.Set("vnp_Command", "pay")
	params.Set("vnp_TmnCode", v.config.TmnCode)
	// VNPay expects the amount in minor units.
	params.Set("vnp_Amount", strconv.FormatInt(int64(amount*100), 10))
	params.Set("vnp_CurrCode", "VND")
	params.Set("vnp_TxnRef", txnRef)
	params.Set("vnp_OrderInfo", orderInfo)
	params.Set("vnp_OrderType", "other")
	params.Set("vnp_Locale", "vn")
	params.Set("vnp_ReturnUrl", v.config.ReturnURL)
	params.Set("vnp_IpAddr", clientIP)
	params.Set("vnp_CreateDate", time.Now().In(v.loc).Format("20060102150405"))

	signed := params.Encode()
	secureHash := v.sign(signed)

	return v.config.BaseURL + "?" + signed + "&vnp_SecureHash=" + secureHash, nil
}

// VerifyCallback checks the signature of a return/IPN callback and
// reports whether the provider marked the transaction successful.
func (v *VNPay) VerifyCallback(params url.Values) (string, bool, error) {
	received := params.Get("vnp_SecureHash")
	if received == "" {
		return "", false, fmt.Errorf("missing vnp_SecureHash")
	}

	verifiable := url.Values{}
	for key, values := range params {
		if key == "vnp_SecureHash" || key == "vnp_SecureHashType" {
			continue
		}
		for _, value := range values {
			verifiable.Add(key, value)
		}
	}

	expected := v.sign(verifiable.Encode())
	if !hmac.Equal([]byte(expected), []byte(received)) {
		v.log.Warn("VNPay callback signature mismatch",
			zap.String("txn_ref", params.Get("vnp_TxnRef")))
		return "", false, fmt.Errorf("invalid callback signature")
	}

	txnRef := params.Get("vnp_TxnRef")
	success := params.Get("vnp_ResponseCode") == "00" && params.Get("vnp_TransactionStatus") == "00"

	return txnRef, success, nil
}

func (v *VNPay) sign(data string) string {
	mac := hmac.New(sha512.New, []byte(v.config.HashSecret))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
