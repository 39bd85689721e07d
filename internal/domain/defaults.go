package domain

// DefaultDeliverySettings seeds the store on first read and backfills
// fields absent from persisted data.
func DefaultDeliverySettings() DeliverySettings {
	return DeliverySettings{
		DeliveryFee:           5.0,
		MinimumOrder:          25.0,
		PixKey:                "pix@restaurante.com",
		FreeDeliveryThreshold: nil,
		Pix: PixSettings{
			Enabled:     true,
			Key:         "pix@restaurante.com",
			Holder:      "Restaurante Exemplo",
			Bank:        "Banco Exemplo",
			QRCodeImage: nil,
		},
	}
}

// DefaultStoreSettings is the out-of-the-box store profile.
func DefaultStoreSettings() StoreSettings {
	return StoreSettings{
		Name:           "Sabor da Casa",
		Logo:           nil,
		LogoSize:       LogoMedium,
		WhatsAppOrders: "5511999999999",
		Footer: FooterSettings{
			Slogan:        "O melhor sabor da cidade, agora com delivery direto na sua casa.",
			WhatsApp:      "(11) 99999-9999",
			Phone:         "(11) 99999-9999",
			Address:       "Rua das Flores, 123 - Centro",
			WeekdayHours:  "Segunda a Sexta: 11h - 23h",
			SaturdayHours: "Sábado: 11h - 00h",
			SundayHours:   "Domingo: 12h - 22h",
			ShowLogo:      true,
		},
		BusinessHours: &BusinessHours{
			Weekday:  TimeRange{Open: "11:00", Close: "23:00"},
			Saturday: TimeRange{Open: "11:00", Close: "00:00"},
			Sunday:   TimeRange{Open: "12:00", Close: "22:00"},
		},
		MobileProductsPerRow: 1,
		ThemeColor:           ThemeRed,
	}
}

// SampleProducts is the catalog seeded on first read so a fresh store
// has a browsable menu.
func SampleProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Feijoada Completa",
			Description: "Feijoada tradicional com arroz, couve, farofa e laranja",
			Price:       45.90,
			Image:       PlaceholderImage("Feijoada Completa"),
			Category:    "Pratos Principais",
			Available:   true,
		},
		{
			ID:          "2",
			Name:        "Picanha na Chapa",
			Description: "Picanha grelhada com arroz, feijão, vinagrete e farofa",
			Price:       62.90,
			Image:       PlaceholderImage("Picanha na Chapa"),
			Category:    "Pratos Principais",
			Available:   true,
		},
		{
			ID:          "3",
			Name:        "X-Burger da Casa",
			Description: "Hambúrguer artesanal, queijo, bacon, alface e tomate",
			Price:       28.90,
			Image:       PlaceholderImage("X-Burger da Casa"),
			Category:    "Lanches",
			Available:   true,
		},
		{
			ID:          "4",
			Name:        "Suco de Laranja",
			Description: "Suco natural de laranja, 500ml",
			Price:       9.90,
			Image:       PlaceholderImage("Suco de Laranja"),
			Category:    "Bebidas",
			Available:   true,
		},
		{
			ID:          "5",
			Name:        "Pudim de Leite",
			Description: "Pudim de leite condensado com calda de caramelo",
			Price:       12.90,
			Image:       PlaceholderImage("Pudim de Leite"),
			Category:    "Sobremesas",
			Available:   true,
		},
	}
}
