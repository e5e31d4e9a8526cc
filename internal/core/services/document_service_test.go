package services_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/SscSPs/agency_backoffice/internal/core/services"
	"github.com/SscSPs/agency_backoffice/internal/dto"
)

type DocumentServiceTestSuite struct {
	suite.Suite
	storage *MockDocumentStorage
	signer  *MockURLSigner
	service portssvc.DocumentSvc
	ctx     context.Context
}

func (suite *DocumentServiceTestSuite) SetupTest() {
	suite.storage = new(MockDocumentStorage)
	suite.signer = new(MockURLSigner)
	suite.service = services.NewDocumentService(suite.storage, suite.signer, "https://api.example.com/")
	suite.ctx = context.Background()
}

func upload(field string, index int, name, body string) dto.Upload {
	return dto.Upload{
		Field:       field,
		Index:       index,
		Filename:    name,
		ContentType: "application/octet-stream",
		Size:        int64(len(body)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(body)), nil
		},
	}
}

func (suite *DocumentServiceTestSuite) TestStoreUploads_SplitsDocumentsAndProofs() {
	suite.storage.On("Save", suite.ctx, domain.StorageR2,
		mock.MatchedBy(func(p string) bool {
			return strings.HasPrefix(p, "flight/f-1/") && strings.HasSuffix(p, "_my_ticket_.pdf")
		}), mock.Anything).Return(int64(4), nil).Once()
	suite.storage.On("Save", suite.ctx, domain.StorageImages,
		mock.MatchedBy(func(p string) bool {
			return strings.HasPrefix(p, "payment-proofs/flight/f-1/") && strings.HasSuffix(p, "_receipt.png")
		}), mock.Anything).Return(int64(3), nil).Once()

	stored, err := suite.service.StoreUploads(suite.ctx, domain.KindFlight, "f-1", []dto.Upload{
		upload("document_file_0", 0, "../my ticket?.pdf", "%PDF"),
		upload("payment_proof_2", 2, "receipt.png", "png"),
		upload("avatar", 0, "me.png", "x"),
	})

	suite.Require().NoError(err)
	suite.Require().Len(stored.Documents, 1)
	suite.Equal("../my ticket?.pdf", stored.Documents[0].Name)
	suite.Equal(domain.StorageR2, stored.Documents[0].Storage)
	suite.Equal(int64(4), stored.Documents[0].Size)
	suite.Require().Contains(stored.Proofs, 2)
	suite.True(strings.HasPrefix(stored.Proofs[2], "payment-proofs/flight/f-1/"))
	suite.storage.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestStoreUploads_StorageError() {
	suite.storage.On("Save", suite.ctx, domain.StorageR2, mock.Anything, mock.Anything).Return(int64(0), assert.AnError).Once()

	stored, err := suite.service.StoreUploads(suite.ctx, domain.KindTransfer, "t-1", []dto.Upload{upload("document_file_0", 0, "a.pdf", "x")})

	suite.Nil(stored)
	suite.Error(err)
}

func (suite *DocumentServiceTestSuite) TestGetDocumentURL() {
	expires := time.Date(2024, 1, 1, 12, 15, 0, 0, time.UTC)
	suite.signer.On("Sign", domain.StorageR2, "flight/f-1/a.pdf", mock.AnythingOfType("time.Time")).Return("tok", expires, nil).Once()

	resp, err := suite.service.GetDocumentURL(suite.ctx, domain.StorageR2, "/flight/f-1/a.pdf")

	suite.Require().NoError(err)
	suite.Equal("https://api.example.com/files/r2/flight/f-1/a.pdf?token=tok", resp.URL)
	suite.Equal(expires, resp.ExpiresAt)
}

func (suite *DocumentServiceTestSuite) TestGetDocumentURL_RejectsBadInput() {
	_, err := suite.service.GetDocumentURL(suite.ctx, domain.StorageR2, "../etc/passwd")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.GetDocumentURL(suite.ctx, domain.StorageR2, "")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.GetDocumentURL(suite.ctx, domain.StorageTag("s3"), "a.pdf")
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.signer.AssertNotCalled(suite.T(), "Sign", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestOpenDocument_VerifiesBeforeOpening() {
	forbidden := apperrors.NewAppError(403, "invalid document token", apperrors.ErrForbidden)
	suite.signer.On("Verify", domain.StorageR2, "a.pdf", "bad").Return(forbidden).Once()

	rc, err := suite.service.OpenDocument(suite.ctx, domain.StorageR2, "a.pdf", "bad")

	suite.Nil(rc)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.storage.AssertNotCalled(suite.T(), "Open", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestOpenDocument() {
	suite.signer.On("Verify", domain.StorageImages, "p/x.png", "good").Return(nil).Once()
	suite.storage.On("Open", suite.ctx, domain.StorageImages, "p/x.png").Return(io.NopCloser(strings.NewReader("png")), nil).Once()

	rc, err := suite.service.OpenDocument(suite.ctx, domain.StorageImages, "p/x.png", "good")

	suite.Require().NoError(err)
	body, _ := io.ReadAll(rc)
	suite.Equal("png", string(body))
}

func (suite *DocumentServiceTestSuite) TestRemoveProof() {
	suite.storage.On("Delete", suite.ctx, domain.StorageImages, "payment-proofs/flight/f-1/p.png").Return(nil).Once()

	suite.Require().NoError(suite.service.RemoveProof(suite.ctx, "payment-proofs/flight/f-1/p.png"))
	suite.ErrorIs(suite.service.RemoveProof(suite.ctx, "../p.png"), apperrors.ErrValidation)
	suite.storage.AssertExpectations(suite.T())
}

func TestDocumentService(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}
