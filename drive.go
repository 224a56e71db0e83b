package drivepath

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

const (
	mimeTypeGoogleAppFolder = "application/vnd.google-apps.folder"

	driveFileFields  = "parents,id,name,mimeType"
	driveFilesFields = "nextPageToken,files(parents,id,name,mimeType)"
)

// DriveBackend is a Backend over the Google Drive v3 API.
type DriveBackend struct {
	service *drive.Service
}

var _ Backend = (*DriveBackend)(nil)

// NewDriveBackend creates a Backend over the given drive.Service.
// The service should be properly authenticated before being passed in.
func NewDriveBackend(service *drive.Service) *DriveBackend {
	return &DriveBackend{service: service}
}

// New creates a Resolver over a Google Drive backend.
func New(service *drive.Service) *Resolver {
	return NewResolver(NewDriveBackend(service))
}

type driveItem struct {
	file *drive.File
}

var _ Item = driveItem{}

func (i driveItem) ID() string {
	return i.file.Id
}

func (i driveItem) Name() string {
	return i.file.Name
}

func (b *DriveBackend) GetItem(ctx context.Context, id string) (Item, error) {
	file, found, err := findByID(ctx, b.service, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("item not found: %s: %w", id, ErrNotFound)
	}
	return driveItem{file: file}, nil
}

func (b *DriveBackend) Parents(ctx context.Context, item Item) (parents []Item, err error) {
	ids, err := b.parentIDs(ctx, item)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		file, found, err := findByID(ctx, b.service, id)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, fmt.Errorf("parent folder not found: %s: %w", id, ErrNotFound)
		}
		parents = append(parents, driveItem{file: file})
	}
	return parents, nil
}

func (b *DriveBackend) FilesByName(ctx context.Context, name string) ([]Item, error) {
	q := fmt.Sprintf("name = '%s' and mimeType != '%s' and trashed = false", escapeQuery(name), mimeTypeGoogleAppFolder)
	return b.queryItems(ctx, q)
}

func (b *DriveBackend) FoldersByName(ctx context.Context, name string) ([]Item, error) {
	q := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false", escapeQuery(name), mimeTypeGoogleAppFolder)
	return b.queryItems(ctx, q)
}

// parentIDs avoids a redundant Files.Get when the item was already fetched
// through this backend, since Drive returns parent IDs with the file itself.
func (b *DriveBackend) parentIDs(ctx context.Context, item Item) ([]string, error) {
	if i, ok := item.(driveItem); ok {
		return i.file.Parents, nil
	}
	file, found, err := findByID(ctx, b.service, item.ID())
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("item not found: %s: %w", item.ID(), ErrNotFound)
	}
	return file.Parents, nil
}

func (b *DriveBackend) queryItems(ctx context.Context, query string) (items []Item, err error) {
	err = b.service.Files.List().
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Q(query).
		Fields(driveFilesFields).
		Pages(ctx, func(list *drive.FileList) error {
			for _, file := range list.Files {
				items = append(items, driveItem{file: file})
			}
			return nil
		})
	if err != nil {
		return nil, newDriveError("failed to query files", err)
	}
	return items, nil
}

func findByID(ctx context.Context, s *drive.Service, fileID string) (file *drive.File, found bool, err error) {
	file, err = s.Files.Get(fileID).
		SupportsAllDrives(true).
		Fields(driveFileFields).
		Context(ctx).
		Do()
	if err != nil {
		var gErr *googleapi.Error
		if errors.As(err, &gErr) {
			if gErr.Code == 404 {
				return nil, false, nil
			}
		}
		return nil, false, newDriveError("failed to get file", err)
	}
	return file, true, nil
}

func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	return s
}
