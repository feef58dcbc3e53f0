package chario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenhouse/hap/accessory"
	"github.com/wrenhouse/hap/db"
	"github.com/wrenhouse/hap/event"
)

func newTestDatabase(t *testing.T) (*db.Database, *accessory.Accessory) {
	t.Helper()
	bus := event.NewBus()
	d := db.New(bus)
	acc := accessory.NewSwitch(accessory.Information{Name: "Outlet 1"})
	acc.AID = 1
	d.Add(acc)
	return d, acc
}

func TestParseIDsAcceptsCommaSeparatedPairs(t *testing.T) {
	ids, err := ParseIDs("1.4,1.6")
	require.NoError(t, err)
	assert.Equal(t, []ID{{AID: 1, IID: 4}, {AID: 1, IID: 6}}, ids)
}

func TestParseIDsRejectsMalformedPair(t *testing.T) {
	_, err := ParseIDs("1,2")
	assert.Error(t, err)
}

func TestParseIDsRejectsEmpty(t *testing.T) {
	_, err := ParseIDs("")
	assert.Error(t, err)
}

func TestReadAllStripsStatusOnTotalSuccess(t *testing.T) {
	d, acc := newTestDatabase(t)
	on := acc.PrimaryService().Required[0]

	res := ReadAll(d, []ID{{AID: 1, IID: on.IID}}, db.ReadFlags{})
	assert.Equal(t, 200, res.Code)
	require.Len(t, res.Objects, 1)
	assert.Nil(t, res.Objects[0].Status)
}

func TestReadAllReturns207AndResourceDoesNotExistOnUnknownID(t *testing.T) {
	d, acc := newTestDatabase(t)
	on := acc.PrimaryService().Required[0]

	res := ReadAll(d, []ID{{AID: 1, IID: on.IID}, {AID: 1, IID: 9999}}, db.ReadFlags{})
	assert.Equal(t, 207, res.Code)
	require.Len(t, res.Objects, 2)
	require.NotNil(t, res.Objects[0].Status)
	assert.Equal(t, 0, *res.Objects[0].Status)
	require.NotNil(t, res.Objects[1].Status)
	assert.Equal(t, statusResourceDoesNotExist, *res.Objects[1].Status)
}

func TestWriteAllRespondsNoContentOnTotalSuccess(t *testing.T) {
	d, acc := newTestDatabase(t)
	on := acc.PrimaryService().Required[0]

	res := WriteAll(d, []db.WriteRequest{{AID: 1, IID: on.IID, Value: true}}, nil)
	assert.Equal(t, 204, res.Code)
	assert.Empty(t, res.Objects)
}

func TestWriteAllRespondsBadRequestOnTotalFailure(t *testing.T) {
	d, acc := newTestDatabase(t)
	name := acc.Services[0].Required[3] // Name characteristic, PairedRead only

	res := WriteAll(d, []db.WriteRequest{{AID: 1, IID: name.IID, Value: "nope"}}, nil)
	assert.Equal(t, 400, res.Code)
	require.Len(t, res.Objects, 1)
	assert.NotEqual(t, 0, res.Objects[0].Status)
}

func TestWriteAllRespondsMultiStatusOnPartialFailure(t *testing.T) {
	d, acc := newTestDatabase(t)
	on := acc.PrimaryService().Required[0]
	name := acc.Services[0].Required[3]

	res := WriteAll(d, []db.WriteRequest{
		{AID: 1, IID: on.IID, Value: true},
		{AID: 1, IID: name.IID, Value: "nope"},
	}, nil)
	assert.Equal(t, 207, res.Code)
	require.Len(t, res.Objects, 2)
	assert.Equal(t, 0, res.Objects[0].Status)
	assert.NotEqual(t, 0, res.Objects[1].Status)
}
