package controller_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gospelmedia_backend/internals/constants"
	"gospelmedia_backend/internals/features/channels/channel_subscriptions/model"
	channelModel "gospelmedia_backend/internals/features/channels/channels/model"
	helper "gospelmedia_backend/internals/helpers"
	"gospelmedia_backend/internals/testutil"
	"gorm.io/gorm"
)

func seedChannel(t *testing.T, db *gorm.DB, name string) channelModel.ChannelModel {
	t.Helper()
	ch := channelModel.ChannelModel{
		Name:     name,
		TenantID: testutil.TenantID,
		UserID:   "channel-owner",
		IsActive: true,
	}
	require.NoError(t, db.Create(&ch).Error)
	return ch
}

func channelCounter(t *testing.T, db *gorm.DB, id uuid.UUID) int64 {
	t.Helper()
	var ch channelModel.ChannelModel
	require.NoError(t, db.Where("id = ?", id).First(&ch).Error)
	return ch.Subscribers
}

func TestSubscribeRoundTrip(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(db)
	token := testutil.Token(constants.RoleListener)
	ch := seedChannel(t, db, "Grace FM")

	// subscribe increments once
	code, env := testutil.Do(t, app, "PUT", "/channel/user/subscription/"+ch.ID.String(), token, nil)
	require.Equal(t, 200, code)
	require.Equal(t, helper.StatusSuccess, env.Status)
	assert.EqualValues(t, 1, channelCounter(t, db, ch.ID))

	// repeat subscribe is idempotent
	testutil.Do(t, app, "PUT", "/channel/user/subscription/"+ch.ID.String(), token, nil)
	assert.EqualValues(t, 1, channelCounter(t, db, ch.ID))

	// unsubscribe decrements and clears notifyMe
	code, env = testutil.Do(t, app, "PUT", "/channel/user/unsubscription/"+ch.ID.String(), token, nil)
	require.Equal(t, 200, code)
	var sub model.ChannelSubscriptionModel
	testutil.Decode(t, env, &sub)
	assert.False(t, sub.Subscribed)
	assert.False(t, sub.NotifyMe)
	assert.EqualValues(t, 0, channelCounter(t, db, ch.ID))

	// repeat unsubscribe never goes negative
	testutil.Do(t, app, "PUT", "/channel/user/unsubscription/"+ch.ID.String(), token, nil)
	assert.EqualValues(t, 0, channelCounter(t, db, ch.ID))

	// resubscribe restores the counter on the same row
	testutil.Do(t, app, "PUT", "/channel/user/subscription/"+ch.ID.String(), token, nil)
	assert.EqualValues(t, 1, channelCounter(t, db, ch.ID))

	var rows int64
	db.Model(&model.ChannelSubscriptionModel{}).Count(&rows)
	assert.EqualValues(t, 1, rows, "upsert keeps a single row per user+channel+tenant")
}

func TestSubscribeUnknownChannel(t *testing.T) {
	app := testutil.NewApp(testutil.OpenDB(t))
	token := testutil.Token(constants.RoleListener)

	code, env := testutil.Do(t, app, "PUT", "/channel/user/subscription/"+uuid.NewString(), token, nil)
	assert.Equal(t, 404, code)
	assert.Equal(t, helper.StatusNotFound, env.Status)

	var payload map[string]string
	testutil.Decode(t, env, &payload)
	assert.Equal(t, "Channel Not Found", payload["msg"])
}

func TestUnsubscribeWithoutRowPersistsNothing(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(db)
	token := testutil.Token(constants.RoleListener)
	ch := seedChannel(t, db, "Grace FM")

	code, env := testutil.Do(t, app, "PUT", "/channel/user/unsubscription/"+ch.ID.String(), token, nil)
	require.Equal(t, 200, code)
	assert.Equal(t, helper.StatusSuccess, env.Status)

	code, env = testutil.Do(t, app, "PUT", "/channel/user/unnotify/"+ch.ID.String(), token, nil)
	require.Equal(t, 200, code)
	assert.Equal(t, helper.StatusSuccess, env.Status)

	var rows int64
	db.Model(&model.ChannelSubscriptionModel{}).Count(&rows)
	assert.Zero(t, rows, "clearing verbs never create a row")
	assert.EqualValues(t, 0, channelCounter(t, db, ch.ID))
}

func TestSubscribeForeignTenantChannelNotFound(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(db)
	token := testutil.Token(constants.RoleListener)

	foreign := channelModel.ChannelModel{
		Name:     "Other Tenant FM",
		TenantID: "tenant-2",
		UserID:   "channel-owner",
		IsActive: true,
	}
	require.NoError(t, db.Create(&foreign).Error)

	code, env := testutil.Do(t, app, "PUT", "/channel/user/subscription/"+foreign.ID.String(), token, nil)
	assert.Equal(t, 404, code)
	assert.Equal(t, helper.StatusNotFound, env.Status)
	assert.EqualValues(t, 0, channelCounter(t, db, foreign.ID))
}

func TestNotifyImpliesSubscribedWithoutCounting(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(db)
	token := testutil.Token(constants.RoleListener)
	ch := seedChannel(t, db, "Grace FM")

	code, env := testutil.Do(t, app, "PUT", "/channel/user/notify/"+ch.ID.String(), token, nil)
	require.Equal(t, 200, code)

	var sub model.ChannelSubscriptionModel
	testutil.Decode(t, env, &sub)
	assert.True(t, sub.Subscribed)
	assert.True(t, sub.NotifyMe)
	assert.EqualValues(t, 0, channelCounter(t, db, ch.ID), "notify does not own the counter")

	code, env = testutil.Do(t, app, "PUT", "/channel/user/unnotify/"+ch.ID.String(), token, nil)
	require.Equal(t, 200, code)
	testutil.Decode(t, env, &sub)
	assert.True(t, sub.Subscribed)
	assert.False(t, sub.NotifyMe)
}

func TestListSubscriptionsExpandsChannel(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(db)
	token := testutil.Token(constants.RoleListener)
	ch := seedChannel(t, db, "Grace FM")

	testutil.Do(t, app, "PUT", "/channel/user/subscription/"+ch.ID.String(), token, nil)

	code, env := testutil.Do(t, app, "GET", "/channel/user/subscription/", token, nil)
	require.Equal(t, 200, code)

	var subs []model.ChannelSubscriptionModel
	testutil.Decode(t, env, &subs)
	require.Len(t, subs, 1)
	require.NotNil(t, subs[0].Channel)
	assert.Equal(t, "Grace FM", subs[0].Channel.Name)
}

func TestListOneSubscriptionAbsentIsEmptySuccess(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(db)
	token := testutil.Token(constants.RoleListener)
	ch := seedChannel(t, db, "Grace FM")

	code, env := testutil.Do(t, app, "GET", "/channel/user/onesubscription/"+ch.ID.String(), token, nil)
	require.Equal(t, 200, code)
	assert.Equal(t, helper.StatusSuccess, env.Status)
	assert.Equal(t, "[]", string(env.Payload))

	testutil.Do(t, app, "PUT", "/channel/user/subscription/"+ch.ID.String(), token, nil)

	code, env = testutil.Do(t, app, "GET", "/channel/user/onesubscription/"+ch.ID.String(), token, nil)
	require.Equal(t, 200, code)
	var sub model.ChannelSubscriptionModel
	testutil.Decode(t, env, &sub)
	assert.True(t, sub.Subscribed)
}
