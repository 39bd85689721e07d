package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/sabordacasa/storefront/internal/adapter/logger"
	"github.com/sabordacasa/storefront/internal/domain"
	"github.com/sabordacasa/storefront/internal/interfaces"
)

var ErrPixDisabled = errors.New("pagamento por PIX não está habilitado")

// Service reads and writes delivery and store configuration. Reads run
// a default-merge and legacy-field migration pass; writes overwrite
// the whole object and broadcast a change notification so
// already-rendered views refresh.
type Service struct {
	repo   interfaces.SettingsRepository
	bus    interfaces.EventBus
	qr     QRGenerator
	logger logger.Logger
}

func NewService(repo interfaces.SettingsRepository, bus interfaces.EventBus, qr QRGenerator, lgr logger.Logger) *Service {
	return &Service{repo: repo, bus: bus, qr: qr, logger: lgr}
}

var _ interfaces.SettingsService = (*Service)(nil)

func (s *Service) Delivery(ctx context.Context) (domain.DeliverySettings, error) {
	raw, err := s.repo.DeliverySettings(ctx)
	if err != nil {
		return domain.DeliverySettings{}, err
	}
	if raw == nil {
		seeded := domain.DefaultDeliverySettings()
		if err := s.repo.SaveDeliverySettings(ctx, seeded); err != nil {
			return domain.DeliverySettings{}, err
		}
		return seeded, nil
	}

	return MergeDelivery(raw)
}

func (s *Service) SaveDelivery(ctx context.Context, settings domain.DeliverySettings) error {
	if err := s.repo.SaveDeliverySettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to save delivery settings: %w", err)
	}

	s.bus.Publish(ctx, interfaces.Event{Type: interfaces.EventSettingsUpdated, Data: map[string]any{"scope": "delivery"}})
	s.logger.Info("delivery_settings_saved", "Delivery settings saved", "", nil)
	return nil
}

func (s *Service) Store(ctx context.Context) (domain.StoreSettings, error) {
	raw, err := s.repo.StoreSettings(ctx)
	if err != nil {
		return domain.StoreSettings{}, err
	}
	if raw == nil {
		seeded := domain.DefaultStoreSettings()
		if err := s.repo.SaveStoreSettings(ctx, seeded); err != nil {
			return domain.StoreSettings{}, err
		}
		return seeded, nil
	}

	return MergeStore(raw)
}

func (s *Service) SaveStore(ctx context.Context, settings domain.StoreSettings) error {
	if err := s.repo.SaveStoreSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to save store settings: %w", err)
	}

	s.bus.Publish(ctx, interfaces.Event{Type: interfaces.EventSettingsUpdated, Data: map[string]any{"scope": "store"}})
	s.logger.Info("store_settings_saved", "Store settings saved", "", nil)
	return nil
}

// PixQRCode returns the QR image shown at PIX checkout: the uploaded
// image when one exists, otherwise a code generated from the PIX key.
func (s *Service) PixQRCode(ctx context.Context) ([]byte, string, error) {
	delivery, err := s.Delivery(ctx)
	if err != nil {
		return nil, "", err
	}
	if !delivery.Pix.Enabled {
		return nil, "", ErrPixDisabled
	}

	if delivery.Pix.QRCodeImage != nil && *delivery.Pix.QRCodeImage != "" {
		mediaType, data, err := domain.DecodeDataURL(*delivery.Pix.QRCodeImage)
		if err != nil {
			return nil, "", fmt.Errorf("failed to decode stored qr image: %w", err)
		}
		return data, mediaType, nil
	}

	png, err := s.qr.Generate(delivery.Pix.Key)
	if err != nil {
		return nil, "", err
	}
	return png, "image/png", nil
}
