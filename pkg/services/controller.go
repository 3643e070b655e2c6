package services

import (
	"errors"
	"fmt"

	"github.com/kerbaras/library/pkg/data"
	"github.com/kerbaras/library/pkg/sources"
	"go.uber.org/zap"
)

// LibraryController is what the console and TUI drivers talk to. It owns
// the catalog for the lifetime of the process.
type LibraryController struct {
	catalog *data.Catalog
	logger  *zap.Logger
}

func NewLibraryController(catalog *data.Catalog, logger *zap.Logger) *LibraryController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LibraryController{catalog: catalog, logger: logger}
}

// NewLibraryControllerFromSource loads a catalog from src and wraps it.
func NewLibraryControllerFromSource(src sources.Source, logger *zap.Logger) (*LibraryController, error) {
	catalog, err := sources.NewCatalog(src)
	if err != nil {
		return nil, err
	}

	c := NewLibraryController(catalog, logger)
	c.logger.Debug("catalog loaded",
		zap.String("source", src.Name()),
		zap.Int("items", catalog.Len()),
		zap.Strings("genres", catalog.Genres()),
	)
	return c, nil
}

func (c *LibraryController) Catalog() *data.Catalog {
	return c.catalog
}

// Available returns the items of a genre that are on the shelf right now.
func (c *LibraryController) Available(genre string) []*data.Item {
	var items []*data.Item
	for item := range c.catalog.GenreIterator(genre).All() {
		items = append(items, item)
	}
	c.logger.Debug("listed genre", zap.String("genre", genre), zap.Int("available", len(items)))
	return items
}

// AllAvailable returns every available item grouped by genre, genres in
// the order they were first added.
func (c *LibraryController) AllAvailable() []*data.Item {
	var items []*data.Item
	for _, genre := range c.catalog.Genres() {
		for item := range c.catalog.GenreIterator(genre).All() {
			items = append(items, item)
		}
	}
	return items
}

func (c *LibraryController) Find(title string) (*data.Item, error) {
	if title == "" {
		return nil, fmt.Errorf("title cannot be empty")
	}
	return c.catalog.FindByTitle(title)
}

func (c *LibraryController) Borrow(title string) error {
	if err := c.catalog.Checkout(title); err != nil {
		c.logDomainError("checkout failed", title, err)
		return err
	}
	c.logger.Debug("checked out", zap.String("title", title))
	return nil
}

func (c *LibraryController) Return(title string) error {
	if err := c.catalog.ReturnItem(title); err != nil {
		c.logDomainError("return failed", title, err)
		return err
	}
	c.logger.Debug("returned", zap.String("title", title))
	return nil
}

// Loans returns the items currently checked out.
func (c *LibraryController) Loans() []*data.Item {
	return c.catalog.CheckedOut()
}

func (c *LibraryController) logDomainError(msg, title string, err error) {
	if errors.Is(err, data.ErrNotFound) || errors.Is(err, data.ErrNotAvailable) {
		c.logger.Info(msg, zap.String("title", title), zap.Error(err))
		return
	}
	c.logger.Warn(msg, zap.String("title", title), zap.Error(err))
}
