package recipe

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"recipehub/entities"
	"recipehub/internal/utils/storage"
)

// syncImages converges the persisted images of a recipe (blobs + rows) to
// keptURLs plus the freshly uploaded files. Kept originals come first,
// uploads are appended; ordering is display-only.
//
// The sequence is not atomic. Upload failures are compensated by deleting
// the blobs already uploaded in the batch; blob deletions for removed
// images are best-effort (a failure leaves an orphaned blob, never a
// dangling row). Row mutations propagate as hard errors.
func (s *recipeService) syncImages(ctx context.Context, recipe *entities.Recipe, keptURLs []string, newFiles []*multipart.FileHeader) error {
	uploadedURLs, err := s.uploadImages(ctx, recipe.UserID.String(), recipe.ID.String(), newFiles)
	if err != nil {
		return err
	}

	desired := make([]string, 0, len(keptURLs)+len(uploadedURLs))
	desired = append(desired, keptURLs...)
	desired = append(desired, uploadedURLs...)

	// Fresh read of the live rows; the pre-edit snapshot may be stale.
	current, err := s.recipeRepository.GetRecipeImages(ctx, recipe.ID.String())
	if err != nil {
		s.cleanupBlobs(uploadedURLs)
		return err
	}

	currentURLs := make(map[string]bool, len(current))
	for _, img := range current {
		currentURLs[img.ImageURL] = true
	}
	desiredSet := make(map[string]bool, len(desired))
	for _, url := range desired {
		desiredSet[url] = true
	}

	var toDelete []string
	for _, img := range current {
		if !desiredSet[img.ImageURL] {
			toDelete = append(toDelete, img.ImageURL)
		}
	}

	for _, url := range toDelete {
		objectKey := s.s3.GetObjectKeyFromLink(url)
		if objectKey == "" {
			continue
		}
		if err := s.s3.DeleteFile(objectKey); err != nil {
			log.Printf("failed to delete image blob %s: %v", objectKey, err)
		}
	}
	if err := s.recipeRepository.DeleteRecipeImagesByURL(ctx, recipe.ID.String(), toDelete); err != nil {
		return err
	}

	for _, url := range desired {
		if currentURLs[url] {
			continue
		}
		image := &entities.RecipeImage{
			ID:        uuid.New(),
			RecipeID:  recipe.ID,
			ImageURL:  url,
			CreatedAt: time.Now(),
		}
		if err := s.recipeRepository.AddRecipeImage(ctx, image); err != nil {
			return err
		}
	}

	return nil
}

// uploadImages pushes the new files to the object store concurrently. If
// any upload fails the whole batch fails and the blobs that did land are
// deleted again.
func (s *recipeService) uploadImages(ctx context.Context, ownerID, recipeID string, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	dir := fmt.Sprintf("recipes/%s/%s", ownerID, recipeID)
	urls := make([]string, len(files))

	g, _ := errgroup.WithContext(ctx)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			base := strings.TrimSuffix(filepath.Base(file.Filename), filepath.Ext(file.Filename))
			fileName := fmt.Sprintf("%s-%s", uuid.New().String(), base)
			objectKey, err := s.s3.UploadFile(fileName, file, dir, storage.AllowImage...)
			if err != nil {
				return err
			}
			urls[i] = s.s3.GetPublicLinkKey(objectKey)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		var landed []string
		for _, url := range urls {
			if url != "" {
				landed = append(landed, url)
			}
		}
		s.cleanupBlobs(landed)
		return nil, err
	}

	return urls, nil
}

func (s *recipeService) cleanupBlobs(urls []string) {
	for _, url := range urls {
		objectKey := s.s3.GetObjectKeyFromLink(url)
		if objectKey == "" {
			continue
		}
		if err := s.s3.DeleteFile(objectKey); err != nil {
			log.Printf("failed to clean up image blob %s: %v", objectKey, err)
		}
	}
}
