package boardController

import (
	"context"
	"errors"

	"rentalos/internal/logger"
	"rentalos/internal/models"
	"rentalos/internal/queries"
	"rentalos/internal/store"

	"github.com/google/uuid"
)

var (
	ErrPostNotFound    = errors.New("board post not found")
	ErrHouseNotFound   = errors.New("house not found")
	ErrContentRequired = errors.New("post content is required")
	ErrNotAuthor       = errors.New("only the author can edit a post")
)

type BoardControllerInterface interface {
	CreatePost(ctx context.Context, houseID, authorID uuid.UUID, content string) (*models.BoardPost, error)
	UpdatePost(ctx context.Context, id, memberID uuid.UUID, content string) (*models.BoardPost, error)
	SetPinned(ctx context.Context, id uuid.UUID, pinned bool) (*models.BoardPost, error)
	DeletePost(ctx context.Context, id uuid.UUID) error
}

type BoardController struct {
	store *store.Store
	log   logger.Logger
}

func New(domainStore *store.Store) BoardControllerInterface {
	return &BoardController{
		store: domainStore,
		log:   logger.New("boardController"),
	}
}

func (bc *BoardController) CreatePost(
	ctx context.Context,
	houseID, authorID uuid.UUID,
	content string,
) (*models.BoardPost, error) {
	log := bc.log.Function("CreatePost")

	if _, found := queries.HouseByID(bc.store.Snapshot(), houseID); !found {
		return nil, log.Err("house not found", ErrHouseNotFound, "houseID", houseID)
	}

	if content == "" {
		return nil, log.Err("post content is required", ErrContentRequired, "houseID", houseID)
	}

	post := models.BoardPost{
		Base:     models.NewBase(),
		HouseID:  houseID,
		AuthorID: authorID,
		Content:  content,
	}

	bc.store.Dispatch(store.UpsertBoardPost(post))

	log.Info("board post created", "postID", post.ID, "houseID", houseID)
	return &post, nil
}

func (bc *BoardController) UpdatePost(
	ctx context.Context,
	id, memberID uuid.UUID,
	content string,
) (*models.BoardPost, error) {
	log := bc.log.Function("UpdatePost")

	post, found := queries.BoardPostByID(bc.store.Snapshot(), id)
	if !found {
		return nil, log.Err("board post not found", ErrPostNotFound, "postID", id)
	}

	if post.AuthorID != memberID {
		return nil, log.Err("only the author can edit a post", ErrNotAuthor, "postID", id, "memberID", memberID)
	}

	if content == "" {
		return nil, log.Err("post content is required", ErrContentRequired, "postID", id)
	}

	post.Content = content
	post.Touch()
	bc.store.Dispatch(store.UpsertBoardPost(post))

	return &post, nil
}

// SetPinned toggles pinning; pinned posts sort ahead of everything else on
// the board.
func (bc *BoardController) SetPinned(
	ctx context.Context,
	id uuid.UUID,
	pinned bool,
) (*models.BoardPost, error) {
	log := bc.log.Function("SetPinned")

	post, found := queries.BoardPostByID(bc.store.Snapshot(), id)
	if !found {
		return nil, log.Err("board post not found", ErrPostNotFound, "postID", id)
	}

	post.IsPinned = pinned
	post.Touch()
	bc.store.Dispatch(store.UpsertBoardPost(post))

	return &post, nil
}

func (bc *BoardController) DeletePost(ctx context.Context, id uuid.UUID) error {
	log := bc.log.Function("DeletePost")

	if _, found := queries.BoardPostByID(bc.store.Snapshot(), id); !found {
		return log.Err("board post not found", ErrPostNotFound, "postID", id)
	}

	bc.store.Dispatch(store.DeleteBoardPost(id))
	return nil
}
