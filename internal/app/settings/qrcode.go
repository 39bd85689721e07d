package settings

import "github.com/skip2/go-qrcode"

type QRGenerator interface {
	Generate(pixKey string) ([]byte, error)
}

type DefaultQRGenerator struct{}

func (DefaultQRGenerator) Generate(pixKey string) ([]byte, error) {
	return qrcode.Encode(pixKey, qrcode.Medium, 256)
}
