package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	s3Mocks "hotel/infras/s3/mocks"
	bookingModel "hotel/internal/domains/booking/model"
	dashboardMocks "hotel/internal/domains/dashboard/mocks"
	dashboardModel "hotel/internal/domains/dashboard/model"
	"hotel/internal/domains/report/model"
	"hotel/internal/domains/report/service"
	"hotel/shared/constant"
	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	dashboard *dashboardMocks.MockDashboard
	s3        *s3Mocks.MockS3
	svc       service.Report
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Report.HotelName = "Garden Residence"
	cfg.Report.RowsPerPage = 18
	cfg.Report.ArchiveDir = "reports"
	cfg.External.S3.BucketName = "hotel"

	f := fixture{
		dashboard: dashboardMocks.NewMockDashboard(ctrl),
		s3:        s3Mocks.NewMockS3(ctrl),
	}

	f.svc = service.New(f.dashboard, cfg, otelMocks.NewOtel(), f.s3)

	return f
}

func snapshot() dashboardModel.Snapshot {
	return dashboardModel.Snapshot{
		Bookings: []bookingModel.Booking{
			{ID: "b-1", GuestName: "Budi Santoso", TotalPrice: 470000, PaymentStatus: bookingModel.PaymentCompleted},
		},
		Stats: dashboardModel.Stats{TotalBookings: 1, TotalRevenue: 470000},
	}
}

func TestReportService_Export(t *testing.T) {
	tests := []struct {
		name        string
		format      string
		setupMock   func(f fixture)
		wantType    string
		wantPrefix  string
		wantErrCode int
	}{
		{
			name:   "csv",
			format: model.FormatCSV,
			setupMock: func(f fixture) {
				f.dashboard.EXPECT().Get(gomock.Any(), false).Return(snapshot(), nil)
			},
			wantType:   constant.ContentTypeCSV,
			wantPrefix: "\uFEFF",
		},
		{
			name:   "pdf",
			format: model.FormatPDF,
			setupMock: func(f fixture) {
				f.dashboard.EXPECT().Get(gomock.Any(), false).Return(snapshot(), nil)
			},
			wantType:   constant.ContentTypePDF,
			wantPrefix: "%PDF-",
		},
		{
			name:   "unknown format",
			format: "xlsx",
			setupMock: func(f fixture) {
				f.dashboard.EXPECT().Get(gomock.Any(), false).Return(snapshot(), nil)
			},
			wantErrCode: http.StatusBadRequest,
		},
		{
			name:   "dashboard unavailable",
			format: model.FormatCSV,
			setupMock: func(f fixture) {
				f.dashboard.EXPECT().Get(gomock.Any(), false).
					Return(dashboardModel.Snapshot{}, failure.InternalError(errors.New("failed to load dashboard data")))
			},
			wantErrCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			doc, err := f.svc.Export(context.Background(), tt.format)

			if tt.wantErrCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantErrCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, doc.ContentType)
			assert.True(t, strings.HasPrefix(string(doc.Body), tt.wantPrefix))
			assert.True(t, strings.HasSuffix(doc.FileName, "."+tt.format))
		})
	}
}

func TestReportService_Archive(t *testing.T) {
	f := newFixture(t)

	f.dashboard.EXPECT().Get(gomock.Any(), false).Return(snapshot(), nil).Times(1)

	f.s3.EXPECT().UploadFileBytes(gomock.Any(), "hotel", "reports", gomock.Any(), constant.ContentTypeCSV, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, fileName, _ string, _ []byte) (string, error) {
			return "https://cdn.example.com/reports/" + fileName, nil
		})
	f.s3.EXPECT().UploadFileBytes(gomock.Any(), "hotel", "reports", gomock.Any(), constant.ContentTypePDF, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, fileName, _ string, _ []byte) (string, error) {
			return "https://cdn.example.com/reports/" + fileName, nil
		})

	res, err := f.svc.Archive(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Files, 2)
	assert.Equal(t, model.FormatCSV, res.Files[0].Format)
	assert.Equal(t, model.FormatPDF, res.Files[1].Format)
	assert.Equal(t, 1, res.BookingCount)
	assert.Equal(t, strings.TrimSuffix(res.Files[0].FileName, ".csv"), strings.TrimSuffix(res.Files[1].FileName, ".pdf"),
		"both files come from the same snapshot")
	assert.Contains(t, res.Files[1].URL, res.Files[1].FileName)
}

func TestReportService_ArchiveUploadFails(t *testing.T) {
	f := newFixture(t)

	f.dashboard.EXPECT().Get(gomock.Any(), false).Return(snapshot(), nil)
	f.s3.EXPECT().UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("access denied"))

	_, err := f.svc.Archive(context.Background())

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}
