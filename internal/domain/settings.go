package domain

// PixSettings holds the PIX receiving account shown at checkout.
type PixSettings struct {
	Enabled     bool    `json:"enabled"`
	Key         string  `json:"key"`
	Holder      string  `json:"holder"`
	Bank        string  `json:"bank"`
	QRCodeImage *string `json:"qrCodeImage"`
}

// DeliverySettings drives the pricing calculator. A nil
// FreeDeliveryThreshold disables free delivery entirely.
type DeliverySettings struct {
	DeliveryFee           float64     `json:"deliveryFee"`
	MinimumOrder          float64     `json:"minimumOrder"`
	PixKey                string      `json:"pixKey"`
	FreeDeliveryThreshold *float64    `json:"freeDeliveryThreshold"`
	Pix                   PixSettings `json:"pix"`
}

type LogoSize string

const (
	LogoSmall  LogoSize = "small"
	LogoMedium LogoSize = "medium"
	LogoLarge  LogoSize = "large"
)

type ThemeColor string

const (
	ThemeRed    ThemeColor = "red"
	ThemePurple ThemeColor = "purple"
	ThemeBlue   ThemeColor = "blue"
	ThemeGreen  ThemeColor = "green"
	ThemeOrange ThemeColor = "orange"
	ThemePink   ThemeColor = "pink"
	ThemeTeal   ThemeColor = "teal"
	ThemeIndigo ThemeColor = "indigo"
)

// FooterSettings is the storefront footer content block.
type FooterSettings struct {
	Slogan        string `json:"slogan"`
	WhatsApp      string `json:"whatsapp"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	WeekdayHours  string `json:"weekdayHours"`
	SaturdayHours string `json:"saturdayHours"`
	SundayHours   string `json:"sundayHours"`
	ShowLogo      bool   `json:"showLogo"`
}

// TimeRange is a same-day opening window in "HH:MM" wall-clock times.
// Close at or before Open means the window wraps past midnight.
type TimeRange struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// BusinessHours groups opening windows into the three day buckets the
// store distinguishes: Monday-Friday, Saturday and Sunday.
type BusinessHours struct {
	Weekday  TimeRange `json:"weekday"`
	Saturday TimeRange `json:"saturday"`
	Sunday   TimeRange `json:"sunday"`
}

// StoreSettings is the store profile. A nil BusinessHours table means
// the store never closes.
type StoreSettings struct {
	Name                 string         `json:"name"`
	Logo                 *string        `json:"logo"`
	LogoSize             LogoSize       `json:"logoSize"`
	WhatsAppOrders       string         `json:"whatsappOrders"`
	Footer               FooterSettings `json:"footer"`
	BusinessHours        *BusinessHours `json:"businessHours,omitempty"`
	MobileProductsPerRow int            `json:"mobileProductsPerRow"`
	ThemeColor           ThemeColor     `json:"themeColor"`
}

// AdminUser identifies an administrator, locally or in the identity
// backend.
type AdminUser struct {
	ID    string `json:"id"`
	TaxID string `json:"cpf_cnpj"`
	Name  string `json:"name"`
}

// Session is the client-held admin session. Validity is purely the
// expiry timestamp, checked at read time; there is no server-side
// revocation.
type Session struct {
	User      AdminUser `json:"user"`
	ExpiresAt int64     `json:"expiresAt"`
}

// Expired reports whether the session expiry has passed, given the
// current time in epoch milliseconds.
func (s Session) Expired(nowMillis int64) bool {
	return s.ExpiresAt <= nowMillis
}
