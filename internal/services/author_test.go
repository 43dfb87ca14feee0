package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"biblioteca-api/internal/models"
)

func TestAuthorService_Create(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAuthorReader(ctrl)
	writer := NewMockAuthorWriter(ctrl)

	reader.EXPECT().GetByFullName(ctx, "Jorge Luis Borges").Return(nil, nil)
	writer.EXPECT().Save(ctx, gomock.Any(), "Jorge Luis Borges").Return(nil)
	reader.EXPECT().GetByID(ctx, gomock.Any()).Return(&models.AuthorDB{
		AuthorID: uuid.New(), FullName: "Jorge Luis Borges",
	}, nil)

	svc := NewAuthorService(reader, writer)
	author, err := svc.Create(ctx, "Jorge Luis Borges")

	assert.NoError(t, err)
	assert.Equal(t, "Jorge Luis Borges", author.FullName)
}

func TestAuthorService_Create_Errors(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAuthorReader(ctrl)
	svc := NewAuthorService(reader, NewMockAuthorWriter(ctrl))

	_, err := svc.Create(ctx, "ab")
	assert.ErrorIs(t, err, ErrInvalidAuthorName)

	reader.EXPECT().GetByFullName(ctx, "Jorge Luis Borges").Return(&models.AuthorDB{
		AuthorID: uuid.New(), FullName: "Jorge Luis Borges",
	}, nil)
	_, err = svc.Create(ctx, "Jorge Luis Borges")
	assert.ErrorIs(t, err, ErrAuthorExists)
}

func TestAuthorService_GetAll(t *testing.T) {
	ctx := context.Background()
	firstID := uuid.New()
	secondID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAuthorReader(ctrl)
	reader.EXPECT().List(ctx).Return([]models.AuthorDB{
		{AuthorID: firstID, FullName: "Jorge Luis Borges"},
		{AuthorID: secondID, FullName: "Julio Cortazar"},
	}, nil)
	reader.EXPECT().ListBooks(ctx, firstID).Return([]models.BookDB{
		{BookID: uuid.New(), Title: "El Aleph", AuthorID: firstID},
	}, nil)
	reader.EXPECT().ListBooks(ctx, secondID).Return(nil, nil)

	svc := NewAuthorService(reader, NewMockAuthorWriter(ctrl))
	authors, err := svc.GetAll(ctx)

	assert.NoError(t, err)
	assert.Len(t, authors, 2)
	assert.Len(t, authors[0].Books, 1)
	assert.Empty(t, authors[1].Books)
}

func TestAuthorService_GetOne(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAuthorReader(ctrl)
	reader.EXPECT().GetByID(ctx, authorID).Return(&models.AuthorDB{
		AuthorID: authorID, FullName: "Julio Cortazar",
	}, nil)
	reader.EXPECT().ListBooks(ctx, authorID).Return([]models.BookDB{
		{BookID: uuid.New(), Title: "Rayuela", AuthorID: authorID},
	}, nil)

	svc := NewAuthorService(reader, NewMockAuthorWriter(ctrl))
	author, err := svc.GetOne(ctx, authorID)

	assert.NoError(t, err)
	assert.Equal(t, "Julio Cortazar", author.FullName)
	assert.Len(t, author.Books, 1)
}

func TestAuthorService_GetOne_NotFound(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAuthorReader(ctrl)
	reader.EXPECT().GetByID(ctx, authorID).Return(nil, nil)

	svc := NewAuthorService(reader, NewMockAuthorWriter(ctrl))
	author, err := svc.GetOne(ctx, authorID)

	assert.Nil(t, author)
	assert.ErrorIs(t, err, ErrAuthorNotFound)
}

func TestAuthorService_Update(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAuthorReader(ctrl)
	writer := NewMockAuthorWriter(ctrl)

	writer.EXPECT().Update(ctx, authorID, "Adolfo Bioy Casares").Return(true, nil)
	reader.EXPECT().GetByID(ctx, authorID).Return(&models.AuthorDB{
		AuthorID: authorID, FullName: "Adolfo Bioy Casares",
	}, nil)

	svc := NewAuthorService(reader, writer)
	author, err := svc.Update(ctx, authorID, "Adolfo Bioy Casares")

	assert.NoError(t, err)
	assert.Equal(t, "Adolfo Bioy Casares", author.FullName)
}

func TestAuthorService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockAuthorWriter(ctrl)
	writer.EXPECT().Update(ctx, authorID, "Adolfo Bioy Casares").Return(false, nil)

	svc := NewAuthorService(NewMockAuthorReader(ctrl), writer)
	author, err := svc.Update(ctx, authorID, "Adolfo Bioy Casares")

	assert.Nil(t, author)
	assert.ErrorIs(t, err, ErrAuthorNotFound)
}

func TestAuthorService_Delete(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockAuthorWriter(ctrl)
	svc := NewAuthorService(NewMockAuthorReader(ctrl), writer)

	writer.EXPECT().Delete(ctx, authorID).Return(true, nil)
	ok, err := svc.Delete(ctx, authorID)
	assert.NoError(t, err)
	assert.True(t, ok)

	writer.EXPECT().Delete(ctx, authorID).Return(false, nil)
	_, err = svc.Delete(ctx, authorID)
	assert.ErrorIs(t, err, ErrAuthorNotFound)
}
