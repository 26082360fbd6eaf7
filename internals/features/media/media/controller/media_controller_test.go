package controller_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gospelmedia_backend/internals/constants"
	channelModel "gospelmedia_backend/internals/features/channels/channels/model"
	"gospelmedia_backend/internals/features/media/media/model"
	tagModel "gospelmedia_backend/internals/features/media/media_tags/model"
	ministerModel "gospelmedia_backend/internals/features/ministers/ministers/model"
	helper "gospelmedia_backend/internals/helpers"
	"gospelmedia_backend/internals/testutil"
)

func seedChannel(t *testing.T, db *gorm.DB, name string, verified bool) channelModel.ChannelModel {
	t.Helper()
	ch := channelModel.ChannelModel{
		Name:       name,
		IsVerified: verified,
		TenantID:   testutil.TenantID,
		UserID:     testutil.UserID,
		IsActive:   true,
	}
	require.NoError(t, db.Create(&ch).Error)
	return ch
}

func seedTag(t *testing.T, db *gorm.DB, name string) tagModel.MediaTagModel {
	t.Helper()
	cipher := testutil.Cipher()
	secret, err := cipher.EncryptField(name)
	require.NoError(t, err)
	tag := tagModel.MediaTagModel{
		NameHash:   cipher.NameHash(name),
		SecretName: secret,
		CoreType:   constants.CoreTypeMusic,
		TenantID:   testutil.TenantID,
		UserID:     testutil.UserID,
		IsActive:   true,
	}
	require.NoError(t, db.Create(&tag).Error)
	return tag
}

func seedMinister(t *testing.T, db *gorm.DB, name string) ministerModel.MinisterModel {
	t.Helper()
	cipher := testutil.Cipher()
	secret, err := cipher.EncryptField(name)
	require.NoError(t, err)
	m := ministerModel.MinisterModel{
		NameHash:   cipher.NameHash(name),
		SecretName: secret,
		CoreType:   constants.CoreTypeSermon,
		TenantID:   testutil.TenantID,
		UserID:     testutil.UserID,
		IsActive:   true,
	}
	require.NoError(t, db.Create(&m).Error)
	return m
}

func TestCreateMediaDefaultsToCallersChannel(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(db)
	token := testutil.Token(constants.RolePublisher)
	ch := seedChannel(t, db, "Grace FM", false)

	code, env := testutil.Do(t, app, "POST", "/media/", token, map[string]interface{}{
		"name":       "Sunday Service",
		"sourceLink": "https://cdn.example.com/sunday.mp3",
		"mediaType":  "audio",
	})
	require.Equal(t, 200, code)
	require.Equal(t, helper.StatusSuccess, env.Status)

	var created model.MediaModel
	testutil.Decode(t, env, &created)
	require.Len(t, created.Channels, 1)
	assert.Equal(t, ch.ID, created.Channels[0].ID)
	assert.Equal(t, "https://cdn.example.com/sunday.mp3", created.SourceLink)

	var stored model.MediaModel
	require.NoError(t, db.Where("id = ?", created.ID).First(&stored).Error)
	assert.NotEmpty(t, stored.SecretSourceLink)
	assert.NotContains(t, stored.SecretSourceLink, "sunday.mp3")
}

func TestCreateMediaScalarChannelRef(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(db)
	token := testutil.Token(constants.RolePublisher)
	seedChannel(t, db, "Default", false)
	other := seedChannel(t, db, "Other", false)

	code, env := testutil.Do(t, app, "POST", "/media/", token, map[string]interface{}{
		"name":         "Evening Prayer",
		"mediaChannel": other.ID.String(), // single scalar, not an array
	})
	require.Equal(t, 200, code)
	require.Equal(t, helper.StatusSuccess, env.Status)

	var created model.MediaModel
	testutil.Decode(t, env, &created)
	require.Len(t, created.Channels, 1)
	assert.Equal(t, other.ID, created.Channels[0].ID)
}

func TestCreateMediaEngagementAndPrettyName(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(db)
	token := testutil.Token(constants.RolePublisher)
	seedChannel(t, db, "Grace FM", true)

	code, env := testutil.Do(t, app, "POST", "/media/", token, map[string]interface{}{
		"name":       "Sunday Service",
		"prettyName": "sunday-service",
		"views":      "1200",
		"likes":      "88",
		"dislikes":   "3",
		"trending":   "yes",
	})
	require.Equal(t, 200, code)
	require.Equal(t, helper.StatusSuccess, env.Status)

	var created model.MediaModel
	testutil.Decode(t, env, &created)
	require.NotNil(t, created.PrettyName)
	assert.Equal(t, "sunday-service", *created.PrettyName)
	assert.Equal(t, "1200", created.Views)
	assert.Equal(t, "88", created.Likes)
	assert.Equal(t, "3", created.Dislikes)
	assert.Equal(t, "yes", created.Trending)
	assert.False(t, created.IsActive, "new media starts suspended")

	// pretty names are globally unique
	code, env = testutil.Do(t, app, "POST", "/media/", token, map[string]interface{}{
		"name":       "Another Service",
		"prettyName": "sunday-service",
	})
	require.Equal(t, 200, code)
	require.Equal(t, helper.StatusFailedValidation, env.Status)

	var details []helper.FieldError
	testutil.Decode(t, env, &details)
	require.Len(t, details, 1)
	assert.Equal(t, "prettyName", details[0].Property)
	assert.Equal(t, "Duplicate Pretty Name sunday-service", details[0].Constraints["duplicate"])
}

func TestCreateMediaUnknownReference(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(db)
	token := testutil.Token(constants.RolePublisher)
	seedChannel(t, db, "Grace FM", false)

	code, env := testutil.Do(t, app, "POST", "/media/", token, map[string]interface{}{
		"name":     "Broken",
		"mediaTag": "not-a-uuid",
	})
	require.Equal(t, 200, code)
	assert.Equal(t, helper.StatusFailedValidation, env.Status)
}

func TestListMediaExpandsAndDecrypts(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(db)
	token := testutil.Token(constants.RolePublisher)
	ch := seedChannel(t, db, "Grace FM", true)
	tag := seedTag(t, db, "Worship")
	minister := seedMinister(t, db, "John Piper")

	_, cenv := testutil.Do(t, app, "POST", "/media/", token, map[string]interface{}{
		"name":         "Sunday Service",
		"sourceLink":   "https://cdn.example.com/sunday.mp3",
		"mediaChannel": []string{ch.ID.String()},
		"mediaTag":     []string{tag.ID.String()},
		"minister":     []string{minister.ID.String()},
	})
	require.Equal(t, helper.StatusSuccess, cenv.Status)

	var created model.MediaModel
	testutil.Decode(t, cenv, &created)
	testutil.Do(t, app, "PUT", "/media/unsuspend/"+created.ID.String(), token, nil)

	code, env := testutil.Do(t, app, "GET", "/media/", "", nil)
	require.Equal(t, 200, code)

	var rows []model.MediaModel
	testutil.Decode(t, env, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "https://cdn.example.com/sunday.mp3", rows[0].SourceLink)
	require.Len(t, rows[0].Channels, 1)
	require.Len(t, rows[0].Tags, 1)
	assert.Equal(t, "Worship", rows[0].Tags[0].Name)
	require.Len(t, rows[0].Ministers, 1)
	assert.Equal(t, "John Piper", rows[0].Ministers[0].Name)
}

func TestSearchMedia(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(db)
	token := testutil.Token(constants.RolePublisher)
	seedChannel(t, db, "Grace FM", true)

	_, senv := testutil.Do(t, app, "POST", "/media/", token, map[string]interface{}{"name": "Sunday Service"})
	testutil.Do(t, app, "POST", "/media/", token, map[string]interface{}{"name": "Midweek Study"})

	var sunday model.MediaModel
	testutil.Decode(t, senv, &sunday)
	testutil.Do(t, app, "PUT", "/media/unsuspend/"+sunday.ID.String(), token, nil)

	// missing filter is NOT_FOUND
	code, env := testutil.Do(t, app, "POST", "/media/search/result", "", map[string]interface{}{})
	assert.Equal(t, 404, code)
	assert.Equal(t, helper.StatusNotFound, env.Status)

	// a present filter always answers SUCCESS, even with no hits
	code, env = testutil.Do(t, app, "POST", "/media/search/result", "",
		map[string]interface{}{"filterName": "nonexistent"})
	require.Equal(t, 200, code)
	require.Equal(t, helper.StatusSuccess, env.Status)
	var rows []model.MediaModel
	testutil.Decode(t, env, &rows)
	assert.Empty(t, rows)

	code, env = testutil.Do(t, app, "POST", "/media/search/result", "",
		map[string]interface{}{"filterName": "Sunday"})
	require.Equal(t, 200, code)
	testutil.Decode(t, env, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "Sunday Service", rows[0].Name)
}

func TestUpdateMediaAppendsThenReplaces(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(db)
	token := testutil.Token(constants.RolePublisher)
	seedChannel(t, db, "Grace FM", true)
	worship := seedTag(t, db, "Worship")
	praise := seedTag(t, db, "Praise")

	_, cenv := testutil.Do(t, app, "POST", "/media/", token, map[string]interface{}{
		"name":     "Sunday Service",
		"mediaTag": []string{worship.ID.String()},
	})
	var created model.MediaModel
	testutil.Decode(t, cenv, &created)

	// default behaviour appends
	code, uenv := testutil.Do(t, app, "PUT", "/media/"+created.ID.String(), token,
		map[string]interface{}{"mediaTag": praise.ID.String()})
	require.Equal(t, 200, code)
	require.Equal(t, helper.StatusSuccess, uenv.Status)

	var updated model.MediaModel
	testutil.Decode(t, uenv, &updated)
	assert.Len(t, updated.Tags, 2)

	// replace_associations swaps the whole set
	code, uenv = testutil.Do(t, app, "PUT", "/media/"+created.ID.String(), token,
		map[string]interface{}{"mediaTag": []string{praise.ID.String()}, "replace_associations": true})
	require.Equal(t, 200, code)
	testutil.Decode(t, uenv, &updated)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, praise.ID, updated.Tags[0].ID)
}

func TestUpdateMediaScalars(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(db)
	token := testutil.Token(constants.RolePublisher)
	seedChannel(t, db, "Grace FM", true)

	_, cenv := testutil.Do(t, app, "POST", "/media/", token, map[string]interface{}{
		"name":       "Sunday Service",
		"sourceLink": "https://cdn.example.com/v1.mp3",
	})
	var created model.MediaModel
	testutil.Decode(t, cenv, &created)

	code, uenv := testutil.Do(t, app, "PUT", "/media/"+created.ID.String(), token,
		map[string]interface{}{"sourceLink": "https://cdn.example.com/v2.mp3", "description": "remastered"})
	require.Equal(t, 200, code)

	var updated model.MediaModel
	testutil.Decode(t, uenv, &updated)
	assert.Equal(t, "https://cdn.example.com/v2.mp3", updated.SourceLink)
	assert.Equal(t, "remastered", updated.Description)
	assert.Equal(t, "Sunday Service", updated.Name)
}

func TestUnsuspendMediaGatedOnVerifiedChannel(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(db)
	token := testutil.Token(constants.RolePublisher)
	ch := seedChannel(t, db, "Grace FM", false)

	_, cenv := testutil.Do(t, app, "POST", "/media/", token, map[string]interface{}{
		"name":         "Sunday Service",
		"mediaChannel": []string{ch.ID.String()},
	})
	var created model.MediaModel
	testutil.Decode(t, cenv, &created)

	testutil.Do(t, app, "PUT", "/media/suspend/"+created.ID.String(), token, nil)

	// unverified channel blocks reactivation
	code, env := testutil.Do(t, app, "PUT", "/media/unsuspend/"+created.ID.String(), token, nil)
	require.Equal(t, 200, code)
	require.Equal(t, helper.StatusFailedValidation, env.Status)
	var payload map[string]string
	testutil.Decode(t, env, &payload)
	assert.Equal(t, "Channel Unverified", payload["err"])

	// verify the channel, then unsuspend goes through
	require.NoError(t, db.Model(&channelModel.ChannelModel{}).
		Where("id = ?", ch.ID).Update("is_verified", true).Error)

	code, env = testutil.Do(t, app, "PUT", "/media/unsuspend/"+created.ID.String(), token, nil)
	require.Equal(t, 200, code)
	require.Equal(t, helper.StatusSuccess, env.Status)

	var reactivated model.MediaModel
	testutil.Decode(t, env, &reactivated)
	assert.True(t, reactivated.IsActive)
}

func TestUnsuspendMediaUsesOldestChannel(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(db)
	token := testutil.Token(constants.RolePublisher)

	primary := seedChannel(t, db, "Primary", false)
	extra := seedChannel(t, db, "Extra", true)
	require.NoError(t, db.Model(&channelModel.ChannelModel{}).Where("id = ?", primary.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)
	require.NoError(t, db.Model(&channelModel.ChannelModel{}).Where("id = ?", extra.ID).
		Update("created_at", time.Now()).Error)

	_, cenv := testutil.Do(t, app, "POST", "/media/", token, map[string]interface{}{
		"name":         "Evening Prayer",
		"mediaChannel": []string{extra.ID.String(), primary.ID.String()},
	})
	var created model.MediaModel
	testutil.Decode(t, cenv, &created)

	// the verified extra channel does not stand in for the primary one
	code, env := testutil.Do(t, app, "PUT", "/media/unsuspend/"+created.ID.String(), token, nil)
	require.Equal(t, 200, code)
	require.Equal(t, helper.StatusFailedValidation, env.Status)
	var payload map[string]string
	testutil.Decode(t, env, &payload)
	assert.Equal(t, "Channel Unverified", payload["err"])

	require.NoError(t, db.Model(&channelModel.ChannelModel{}).
		Where("id = ?", primary.ID).Update("is_verified", true).Error)

	code, env = testutil.Do(t, app, "PUT", "/media/unsuspend/"+created.ID.String(), token, nil)
	require.Equal(t, 200, code)
	assert.Equal(t, helper.StatusSuccess, env.Status)
}

func TestRemoveMediaSoftVsTotal(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(db)
	token := testutil.Token(constants.RolePublisher)
	seedChannel(t, db, "Grace FM", true)

	_, env1 := testutil.Do(t, app, "POST", "/media/", token, map[string]interface{}{"name": "Soft"})
	_, env2 := testutil.Do(t, app, "POST", "/media/", token, map[string]interface{}{"name": "Gone"})
	var soft, gone model.MediaModel
	testutil.Decode(t, env1, &soft)
	testutil.Decode(t, env2, &gone)

	code, _ := testutil.Do(t, app, "DELETE", "/media/"+soft.ID.String(), token, nil)
	require.Equal(t, 200, code)
	code, _ = testutil.Do(t, app, "DELETE", "/media/total/"+gone.ID.String(), token, nil)
	require.Equal(t, 200, code)

	var count int64
	db.Model(&model.MediaModel{}).Count(&count)
	assert.EqualValues(t, 1, count)

	_, lenv := testutil.Do(t, app, "GET", "/media/", "", nil)
	var visible []model.MediaModel
	testutil.Decode(t, lenv, &visible)
	assert.Empty(t, visible)
}
