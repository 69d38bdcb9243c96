package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"billdesk/internal/config"
	"billdesk/internal/document"
	"billdesk/internal/domain"
	"billdesk/internal/port"
	"billdesk/internal/taxengine"
)

// ExportOptions controls what happens to a rendered PDF besides returning it.
type ExportOptions struct {
	Store     bool
	EmailTo   string
	EmailName string
}

// ExportResult is a rendered document and, when stored, its export record.
type ExportResult struct {
	PDF         []byte
	FileName    string
	Preview     *document.Preview
	Record      *domain.ExportRecord
	DownloadURL string
}

// ExportService renders documents to PDF and keeps exported copies.
type ExportService interface {
	Export(ctx context.Context, kind document.Kind, doc *document.Document, opts ExportOptions) (*ExportResult, error)
	ExportByID(ctx context.Context, kind document.Kind, id string, opts ExportOptions) (*ExportResult, error)
	List(ctx context.Context, offset, limit int) ([]domain.ExportRecord, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ExportRecord, error)
	GetDownloadURL(ctx context.Context, id uuid.UUID) (string, error)
	Email(ctx context.Context, id uuid.UUID, toEmail, toName string) error
}

type exportService struct {
	previews PreviewService
	renderer port.DocumentRenderer
	repo     port.ExportRepository
	storage  port.ObjectStorage
	email    port.EmailSender
	cfg      *config.S3Config
}

// NewExportService creates a new ExportService implementation.
func NewExportService(
	previews PreviewService,
	renderer port.DocumentRenderer,
	repo port.ExportRepository,
	storage port.ObjectStorage,
	email port.EmailSender,
	cfg *config.S3Config,
) ExportService {
	return &exportService{
		previews: previews,
		renderer: renderer,
		repo:     repo,
		storage:  storage,
		email:    email,
		cfg:      cfg,
	}
}

func (s *exportService) Export(ctx context.Context, kind document.Kind, doc *document.Document, opts ExportOptions) (*ExportResult, error) {
	if strings.TrimSpace(opts.EmailTo) != "" && !opts.Store {
		return nil, domain.ErrEmailRequiresStore
	}

	p, err := s.previews.Preview(ctx, kind, doc)
	if err != nil {
		return nil, err
	}
	return s.export(ctx, p, opts)
}

func (s *exportService) ExportByID(ctx context.Context, kind document.Kind, id string, opts ExportOptions) (*ExportResult, error) {
	if strings.TrimSpace(opts.EmailTo) != "" && !opts.Store {
		return nil, domain.ErrEmailRequiresStore
	}

	p, err := s.previews.PreviewByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	return s.export(ctx, p, opts)
}

func (s *exportService) export(ctx context.Context, p *document.Preview, opts ExportOptions) (*ExportResult, error) {
	pdf, err := s.renderer.Render(p)
	if err != nil {
		log.Printf("exportService.Export: rendering %s %s failed: %v", p.Kind, p.Number, err)
		return nil, err
	}

	result := &ExportResult{PDF: pdf, FileName: p.FileName(), Preview: p}
	if !opts.Store {
		return result, nil
	}

	rec, err := s.store(ctx, p, result.FileName, pdf)
	if err != nil {
		return nil, err
	}
	result.Record = rec

	url, err := s.storage.GetPresignedURL(ctx, rec.S3Bucket, rec.S3Key, s.cfg.PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("generating download URL: %w", err)
	}
	result.DownloadURL = url

	if to := strings.TrimSpace(opts.EmailTo); to != "" {
		if err := s.send(ctx, rec, p, url, to, opts.EmailName); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s *exportService) store(ctx context.Context, p *document.Preview, fileName string, pdf []byte) (*domain.ExportRecord, error) {
	id := uuid.New()
	rec := &domain.ExportRecord{
		ID:             id,
		DocumentKind:   string(p.Kind),
		DocumentNumber: p.Number,
		FileName:       fileName,
		S3Bucket:       s.cfg.Bucket,
		S3Key:          fmt.Sprintf("exports/%s/%s/%s", p.Kind, id, fileName),
		SizeBytes:      int64(len(pdf)),
		RoundedTotal:   exportTotal(p),
		Status:         domain.ExportStatusPending,
	}

	log.Printf("exportService.Export: storing %s %s (%d bytes) as %s", p.Kind, p.Number, rec.SizeBytes, rec.ID)

	if err := s.repo.Create(ctx, rec); err != nil {
		log.Printf("exportService.Export: failed to create export record: %v", err)
		return nil, fmt.Errorf("creating export record: %w", err)
	}

	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      rec.S3Bucket,
		Key:         rec.S3Key,
		Body:        bytes.NewReader(pdf),
		ContentType: domain.ContentTypePDF,
		Size:        rec.SizeBytes,
		FileName:    fileName,
	})
	if err != nil {
		log.Printf("exportService.Export: S3 upload failed for export %s: %v", rec.ID, err)
		_ = s.repo.UpdateStatus(ctx, rec.ID, domain.ExportStatusFailed)
		return nil, domain.ErrUploadFailed
	}

	if err := s.repo.UpdateStatus(ctx, rec.ID, domain.ExportStatusStored); err != nil {
		if derr := s.storage.Delete(ctx, rec.S3Bucket, rec.S3Key); derr != nil {
			log.Printf("exportService.Export: orphaned object %s left in %s: %v", rec.S3Key, rec.S3Bucket, derr)
		}
		return nil, fmt.Errorf("updating export status: %w", err)
	}
	rec.Status = domain.ExportStatusStored
	return rec, nil
}

func (s *exportService) send(ctx context.Context, rec *domain.ExportRecord, p *document.Preview, url, to, name string) error {
	if name == "" {
		name = p.Party.Name
	}
	msg := port.DocumentEmail{
		ToEmail:      to,
		ToName:       name,
		BusinessName: p.Business.Name,
		Title:        p.Title,
		Number:       p.Number,
		Total:        taxengine.FormatMoney(rec.RoundedTotal),
		DownloadURL:  url,
	}
	if err := s.email.SendDocumentEmail(ctx, msg); err != nil {
		log.Printf("exportService.Email: sending export %s to %s failed: %v", rec.ID, to, err)
		return fmt.Errorf("%v: %w", err, domain.ErrEmailFailed)
	}
	if err := s.repo.SetEmailed(ctx, rec.ID, to); err != nil {
		return fmt.Errorf("recording email: %w", err)
	}
	rec.Status = domain.ExportStatusEmailed
	rec.EmailedTo = &to
	return nil
}

func (s *exportService) List(ctx context.Context, offset, limit int) ([]domain.ExportRecord, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *exportService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ExportRecord, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *exportService) GetDownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	rec, err := s.downloadable(ctx, id)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, rec.S3Bucket, rec.S3Key, s.cfg.PresignExpiry)
}

// Email shares an already stored export. The document is not re-rendered.
func (s *exportService) Email(ctx context.Context, id uuid.UUID, toEmail, toName string) error {
	toEmail = strings.TrimSpace(toEmail)
	if toEmail == "" {
		return domain.ErrRecipientRequired
	}
	rec, err := s.downloadable(ctx, id)
	if err != nil {
		return err
	}
	url, err := s.storage.GetPresignedURL(ctx, rec.S3Bucket, rec.S3Key, s.cfg.PresignExpiry)
	if err != nil {
		return fmt.Errorf("generating download URL: %w", err)
	}

	kind := document.Kind(rec.DocumentKind)
	p := &document.Preview{Kind: kind, Title: kind.Title(), Number: rec.DocumentNumber}
	return s.send(ctx, rec, p, url, toEmail, toName)
}

func (s *exportService) downloadable(ctx context.Context, id uuid.UUID) (*domain.ExportRecord, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Status == domain.ExportStatusPending || rec.Status == domain.ExportStatusFailed {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

func exportTotal(p *document.Preview) decimal.Decimal {
	if p.Receipt != nil {
		return p.Receipt.Amount
	}
	return p.Totals.RoundedTotal
}
