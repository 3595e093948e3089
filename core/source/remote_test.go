package source

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"arkdata/core/storage/mocks"
)

func TestRemoteSource_FetchTable(t *testing.T) {
	t.Run("Existing Object", func(t *testing.T) {
		client := new(mocks.Client)
		body := io.NopCloser(strings.NewReader(`{"items":{}}`))
		client.On("GetObject", mock.Anything, "gamedata", "en_US/gamedata/excel/item_table.json", mock.Anything).
			Return(body, nil)

		src := NewRemote(client, "gamedata", RegionEnUS)
		data, err := src.FetchTable(context.Background(), TableItem)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"items":{}}`, string(data))
		client.AssertExpectations(t)
	})

	t.Run("Missing Object", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "gamedata", "ko_KR/gamedata/excel/skill_table.json", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

		src := NewRemote(client, "gamedata", RegionKoKR)
		_, err := src.FetchTable(context.Background(), TableSkill)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Transport Failure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "gamedata", mock.Anything, mock.Anything).
			Return(nil, errors.New("connection refused"))

		src := NewRemote(client, "gamedata", RegionEnUS)
		_, err := src.FetchTable(context.Background(), TableCharacter)
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestRemoteSource_StatTable(t *testing.T) {
	client := new(mocks.Client)
	client.On("StatObject", mock.Anything, "gamedata", "en_US/gamedata/excel/building_data.json", mock.Anything).
		Return(minio.ObjectInfo{Key: "en_US/gamedata/excel/building_data.json"}, nil)
	client.On("StatObject", mock.Anything, "gamedata", "en_US/gamedata/excel/char_meta_table.json", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})

	src := NewRemote(client, "gamedata", RegionEnUS)
	assert.NoError(t, src.StatTable(context.Background(), TableBuilding))
	assert.ErrorIs(t, src.StatTable(context.Background(), TableCharacterMeta), ErrNotFound)
}
