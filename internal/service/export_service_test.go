package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billdesk/internal/config"
	"billdesk/internal/document"
	"billdesk/internal/domain"
	"billdesk/internal/port"
	"billdesk/internal/service"
	"billdesk/mocks"
)

type exportDeps struct {
	source   *mocks.MockDocumentSource
	renderer *mocks.MockDocumentRenderer
	repo     *mocks.MockExportRepo
	storage  *mocks.MockObjectStorage
	email    *mocks.MockEmailSender
}

func newExportService() (service.ExportService, *exportDeps) {
	d := &exportDeps{
		source:   new(mocks.MockDocumentSource),
		renderer: new(mocks.MockDocumentRenderer),
		repo:     new(mocks.MockExportRepo),
		storage:  new(mocks.MockObjectStorage),
		email:    new(mocks.MockEmailSender),
	}
	cfg := &config.S3Config{Bucket: "test-bucket", PresignExpiry: 600}
	svc := service.NewExportService(service.NewPreviewService(d.source), d.renderer, d.repo, d.storage, d.email, cfg)
	return svc, d
}

var pdfBytes = []byte("%PDF-1.3 test")

func TestExportService_Export_NoStore(t *testing.T) {
	svc, d := newExportService()
	d.renderer.On("Render", mock.AnythingOfType("*document.Preview")).Return(pdfBytes, nil)

	res, err := svc.Export(context.Background(), document.KindInvoice, sampleDocument(), service.ExportOptions{})
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, res.PDF)
	assert.Equal(t, "tax-invoice-INV-1.pdf", res.FileName)
	assert.Nil(t, res.Record)
	d.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	d.storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestExportService_Export_StoreAndEmail(t *testing.T) {
	svc, d := newExportService()
	d.renderer.On("Render", mock.Anything).Return(pdfBytes, nil)
	d.repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ExportRecord")).Return(nil)
	d.storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "test-bucket" && in.ContentType == domain.ContentTypePDF &&
			in.FileName == "tax-invoice-INV-1.pdf" && in.Size == int64(len(pdfBytes))
	})).Return(&port.UploadOutput{Location: "s3://x"}, nil)
	d.repo.On("UpdateStatus", mock.Anything, mock.AnythingOfType("uuid.UUID"), domain.ExportStatusStored).Return(nil)
	d.storage.On("GetPresignedURL", mock.Anything, "test-bucket", mock.AnythingOfType("string"), int64(600)).
		Return("https://signed.example.com/x", nil)
	d.email.On("SendDocumentEmail", mock.Anything, mock.MatchedBy(func(msg port.DocumentEmail) bool {
		return msg.ToEmail == "asha@example.com" && msg.ToName == "Asha Traders" &&
			msg.Total == "212.00" && msg.DownloadURL == "https://signed.example.com/x"
	})).Return(nil)
	d.repo.On("SetEmailed", mock.Anything, mock.AnythingOfType("uuid.UUID"), "asha@example.com").Return(nil)

	res, err := svc.Export(context.Background(), document.KindInvoice, sampleDocument(), service.ExportOptions{
		Store:   true,
		EmailTo: "asha@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, res.Record)
	assert.Equal(t, domain.ExportStatusEmailed, res.Record.Status)
	assert.Contains(t, res.Record.S3Key, "exports/invoice/")
	assert.True(t, decimal.NewFromInt(212).Equal(res.Record.RoundedTotal))
	assert.Equal(t, "https://signed.example.com/x", res.DownloadURL)
	d.email.AssertExpectations(t)
	d.repo.AssertExpectations(t)
}

func TestExportService_Export_EmailRequiresStore(t *testing.T) {
	svc, d := newExportService()

	_, err := svc.Export(context.Background(), document.KindInvoice, sampleDocument(), service.ExportOptions{EmailTo: "a@b.c"})
	assert.ErrorIs(t, err, domain.ErrEmailRequiresStore)
	d.renderer.AssertNotCalled(t, "Render", mock.Anything)
}

func TestExportService_Export_UploadFails(t *testing.T) {
	svc, d := newExportService()
	d.renderer.On("Render", mock.Anything).Return(pdfBytes, nil)
	d.repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	d.storage.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("s3 down"))
	d.repo.On("UpdateStatus", mock.Anything, mock.Anything, domain.ExportStatusFailed).Return(nil)

	_, err := svc.Export(context.Background(), document.KindInvoice, sampleDocument(), service.ExportOptions{Store: true})
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	d.repo.AssertCalled(t, "UpdateStatus", mock.Anything, mock.Anything, domain.ExportStatusFailed)
}

func TestExportService_Export_StatusUpdateFailsRemovesObject(t *testing.T) {
	svc, d := newExportService()
	d.renderer.On("Render", mock.Anything).Return(pdfBytes, nil)
	d.repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	d.storage.On("Upload", mock.Anything, mock.Anything).Return(&port.UploadOutput{}, nil)
	d.repo.On("UpdateStatus", mock.Anything, mock.Anything, domain.ExportStatusStored).Return(errors.New("conn reset"))
	d.storage.On("Delete", mock.Anything, "test-bucket", mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "exports/invoice/") && strings.HasSuffix(key, "/tax-invoice-INV-1.pdf")
	})).Return(nil)

	_, err := svc.Export(context.Background(), document.KindInvoice, sampleDocument(), service.ExportOptions{Store: true})
	assert.Error(t, err)
	d.storage.AssertExpectations(t)
}

func TestExportService_Export_RenderFails(t *testing.T) {
	svc, d := newExportService()
	d.renderer.On("Render", mock.Anything).Return(nil, domain.ErrRenderFailed)

	_, err := svc.Export(context.Background(), document.KindInvoice, sampleDocument(), service.ExportOptions{Store: true})
	assert.ErrorIs(t, err, domain.ErrRenderFailed)
	d.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExportService_Export_EmailFails(t *testing.T) {
	svc, d := newExportService()
	d.renderer.On("Render", mock.Anything).Return(pdfBytes, nil)
	d.repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	d.storage.On("Upload", mock.Anything, mock.Anything).Return(&port.UploadOutput{}, nil)
	d.repo.On("UpdateStatus", mock.Anything, mock.Anything, domain.ExportStatusStored).Return(nil)
	d.storage.On("GetPresignedURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("https://x", nil)
	d.email.On("SendDocumentEmail", mock.Anything, mock.Anything).Return(errors.New("ses throttled"))

	_, err := svc.Export(context.Background(), document.KindInvoice, sampleDocument(), service.ExportOptions{
		Store: true, EmailTo: "a@b.c",
	})
	assert.ErrorIs(t, err, domain.ErrEmailFailed)
	d.repo.AssertNotCalled(t, "SetEmailed", mock.Anything, mock.Anything, mock.Anything)
}

func TestExportService_ExportByID(t *testing.T) {
	svc, d := newExportService()
	d.source.On("Fetch", mock.Anything, document.KindProforma, "9").Return(sampleDocument(), nil)
	d.renderer.On("Render", mock.Anything).Return(pdfBytes, nil)

	res, err := svc.ExportByID(context.Background(), document.KindProforma, "9", service.ExportOptions{})
	require.NoError(t, err)
	assert.Equal(t, "proforma-invoice-INV-1.pdf", res.FileName)
}

func TestExportService_GetDownloadURL(t *testing.T) {
	svc, d := newExportService()
	id := uuid.New()
	d.repo.On("GetByID", mock.Anything, id).Return(&domain.ExportRecord{
		ID: id, S3Bucket: "test-bucket", S3Key: "exports/k", Status: domain.ExportStatusStored,
	}, nil)
	d.storage.On("GetPresignedURL", mock.Anything, "test-bucket", "exports/k", int64(600)).Return("https://signed", nil)

	url, err := svc.GetDownloadURL(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "https://signed", url)
}

func TestExportService_GetDownloadURL_FailedExport(t *testing.T) {
	svc, d := newExportService()
	id := uuid.New()
	d.repo.On("GetByID", mock.Anything, id).Return(&domain.ExportRecord{ID: id, Status: domain.ExportStatusFailed}, nil)

	_, err := svc.GetDownloadURL(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	d.storage.AssertNotCalled(t, "GetPresignedURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExportService_Email(t *testing.T) {
	svc, d := newExportService()
	id := uuid.New()
	d.repo.On("GetByID", mock.Anything, id).Return(&domain.ExportRecord{
		ID: id, DocumentKind: "estimate", DocumentNumber: "EST-4", S3Bucket: "b", S3Key: "k",
		RoundedTotal: decimal.NewFromInt(1180), Status: domain.ExportStatusStored,
	}, nil)
	d.storage.On("GetPresignedURL", mock.Anything, "b", "k", int64(600)).Return("https://signed", nil)
	d.email.On("SendDocumentEmail", mock.Anything, mock.MatchedBy(func(msg port.DocumentEmail) bool {
		return msg.Title == "ESTIMATE" && msg.Number == "EST-4" && msg.Total == "1,180.00"
	})).Return(nil)
	d.repo.On("SetEmailed", mock.Anything, id, "x@y.z").Return(nil)

	err := svc.Email(context.Background(), id, " x@y.z ", "")
	require.NoError(t, err)
	d.email.AssertExpectations(t)
}

func TestExportService_Email_NoRecipient(t *testing.T) {
	svc, _ := newExportService()

	err := svc.Email(context.Background(), uuid.New(), "  ", "")
	assert.ErrorIs(t, err, domain.ErrRecipientRequired)
}
