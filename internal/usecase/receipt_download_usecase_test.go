package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	mock_interfaces "novo_seguros/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReceiptDownloadUseCase_Download(t *testing.T) {
	t.Run("empty slip id", func(t *testing.T) {
		uc := NewReceiptDownloadUseCase(nil)
		_, _, err := uc.Download(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidSlipID) {
			t.Fatalf("expected ErrInvalidSlipID, got %v", err)
		}
	})

	t.Run("success builds the comprovante file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		fetcher := mock_interfaces.NewMockIReceiptFetcher(ctrl)
		fetcher.EXPECT().Fetch(gomock.Any()).Return([]byte("%PDF-1.4"), "application/pdf", nil)

		uc := NewReceiptDownloadUseCase(fetcher)
		file, notifications, err := uc.Download(context.Background(), "COMP-001")
		if err != nil {
			t.Fatalf("Download failed: %v", err)
		}
		if file.Filename != "comprovante-COMP-001.pdf" {
			t.Fatalf("unexpected filename: %s", file.Filename)
		}
		if file.ContentType != "application/pdf" || string(file.Content) != "%PDF-1.4" {
			t.Fatalf("unexpected file payload: %+v", file)
		}
		if len(notifications) != 1 || notifications[0].Title != "Download concluído" {
			t.Fatalf("unexpected notifications: %+v", notifications)
		}
		if pending := uc.PendingDownloads(); len(pending) != 0 {
			t.Fatalf("pending set not cleared: %v", pending)
		}
	})

	t.Run("fetch failure clears pending and notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		fetcher := mock_interfaces.NewMockIReceiptFetcher(ctrl)
		fetcher.EXPECT().Fetch(gomock.Any()).Return(nil, "", errors.New("timeout"))

		uc := NewReceiptDownloadUseCase(fetcher)
		_, notifications, err := uc.Download(context.Background(), "COMP-002")
		if err == nil || err.Error() != "timeout" {
			t.Fatalf("expected timeout error, got %v", err)
		}
		if len(notifications) != 1 || notifications[0].Title != "Erro no download" {
			t.Fatalf("unexpected notifications: %+v", notifications)
		}
		if pending := uc.PendingDownloads(); len(pending) != 0 {
			t.Fatalf("pending set not cleared after failure: %v", pending)
		}
	})

	t.Run("slip id is pending while the fetch runs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		fetcher := mock_interfaces.NewMockIReceiptFetcher(ctrl)
		uc := NewReceiptDownloadUseCase(fetcher)

		fetcher.EXPECT().Fetch(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]byte, string, error) {
			pending := uc.PendingDownloads()
			if len(pending) != 1 || pending[0] != "COMP-003" {
				t.Errorf("expected COMP-003 pending during fetch, got %v", pending)
			}
			return []byte("pdf"), "application/pdf", nil
		})

		if _, _, err := uc.Download(context.Background(), "COMP-003"); err != nil {
			t.Fatalf("Download failed: %v", err)
		}
	})
}

func TestReceiptDownloadUseCase_ConcurrentDownloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fetcher := mock_interfaces.NewMockIReceiptFetcher(ctrl)
	uc := NewReceiptDownloadUseCase(fetcher)

	started := make(chan struct{}, 2)
	release := make(chan struct{})
	fetcher.EXPECT().Fetch(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]byte, string, error) {
		started <- struct{}{}
		<-release
		return []byte("pdf"), "application/pdf", nil
	}).Times(2)

	var wg sync.WaitGroup
	for _, id := range []string{"COMP-001", "COMP-002"} {
		wg.Add(1)
		go func(slipID string) {
			defer wg.Done()
			if _, _, err := uc.Download(context.Background(), slipID); err != nil {
				t.Errorf("Download %s failed: %v", slipID, err)
			}
		}(id)
	}

	<-started
	<-started
	pending := uc.PendingDownloads()
	if len(pending) != 2 || pending[0] != "COMP-001" || pending[1] != "COMP-002" {
		t.Fatalf("expected both slips pending, got %v", pending)
	}

	close(release)
	wg.Wait()
	if pending := uc.PendingDownloads(); len(pending) != 0 {
		t.Fatalf("pending set not empty after both settled: %v", pending)
	}
}
