package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"novo_seguros/internal/domain/entities"
	"novo_seguros/internal/usecase/interfaces"
)

var ErrInvalidSlipID = errors.New("invalid slip id")

// ReceiptFile is the fetched comprovante ready for a client-side save-as.

type ReceiptFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// IReceiptDownloadUseCase downloads a slip receipt while tracking which slip
// ids have a download in flight.
//
// Lifecycle: the slip id joins the pending set before the fetch is issued and
// leaves it unconditionally when the fetch settles, success or failure.
// Concurrent downloads of different ids are independent; a second request for
// the same id is not blocked here.

type IReceiptDownloadUseCase interface {
	Download(ctx context.Context, slipID string) (ReceiptFile, []entities.Notification, error)
	PendingDownloads() []string
}

type ReceiptDownloadUseCase struct {
	fetcher interfaces.IReceiptFetcher

	mu      sync.Mutex
	pending map[string]struct{}
}

var _ IReceiptDownloadUseCase = (*ReceiptDownloadUseCase)(nil)

func NewReceiptDownloadUseCase(fetcher interfaces.IReceiptFetcher) *ReceiptDownloadUseCase {
	return &ReceiptDownloadUseCase{
		fetcher: fetcher,
		pending: make(map[string]struct{}),
	}
}

func (u *ReceiptDownloadUseCase) Download(ctx context.Context, slipID string) (ReceiptFile, []entities.Notification, error) {
	slipID = strings.TrimSpace(slipID)
	if slipID == "" {
		return ReceiptFile{}, nil, ErrInvalidSlipID
	}

	u.markPending(slipID)
	defer u.clearPending(slipID)

	log.Printf("[download][usecase] start slip_id=%s", slipID)
	content, contentType, err := u.fetcher.Fetch(ctx)
	if err != nil {
		log.Printf("[download][usecase] failed slip_id=%s err=%v", slipID, err)
		notifications := []entities.Notification{
			entities.DestructiveNotification(
				"Erro no download",
				"Não foi possível baixar o comprovante. Tente novamente.",
			),
		}
		return ReceiptFile{}, notifications, err
	}

	log.Printf("[download][usecase] success slip_id=%s bytes=%d", slipID, len(content))
	file := ReceiptFile{
		Filename:    fmt.Sprintf("comprovante-%s.pdf", slipID),
		ContentType: contentType,
		Content:     content,
	}
	notifications := []entities.Notification{
		entities.InfoNotification(
			"Download concluído",
			fmt.Sprintf("Comprovante %s foi baixado com sucesso.", slipID),
		),
	}
	return file, notifications, nil
}

// PendingDownloads lists the slip ids with a download in flight, sorted for
// stable output.
func (u *ReceiptDownloadUseCase) PendingDownloads() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	ids := make([]string, 0, len(u.pending))
	for id := range u.pending {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (u *ReceiptDownloadUseCase) markPending(slipID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.pending[slipID] = struct{}{}
}

func (u *ReceiptDownloadUseCase) clearPending(slipID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.pending, slipID)
}
