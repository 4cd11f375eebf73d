package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written mus-format serializers for the types that reach storage.
// Only raw corpus records are persisted; vectors live in the in-memory
// index and are rebuilt from scratch, so they are never serialized.

var (
	stringsMUS   = ord.NewSliceSer[string](ord.String)
	optStringMUS = ord.NewPtrSer[string](ord.String)
)

// IDMUS serializes ID values.
var IDMUS = idMUS{}

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

// ExpertEntryMUS serializes ExpertEntry values.
var ExpertEntryMUS = expertEntryMUS{}

type expertEntryMUS struct{}

func (expertEntryMUS) Marshal(e ExpertEntry, bs []byte) (n int) {
	n = stringsMUS.Marshal(e.Tags, bs)
	n += optStringMUS.Marshal(e.Position, bs[n:])
	n += optStringMUS.Marshal(e.ScholarID, bs[n:])
	return n
}

func (expertEntryMUS) Unmarshal(bs []byte) (e ExpertEntry, n int, err error) {
	e.Tags, n, err = stringsMUS.Unmarshal(bs)
	if err != nil {
		return e, n, err
	}
	var n1 int
	e.Position, n1, err = optStringMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return e, n, err
	}
	e.ScholarID, n1, err = optStringMUS.Unmarshal(bs[n:])
	n += n1
	return e, n, err
}

func (expertEntryMUS) Size(e ExpertEntry) int {
	return stringsMUS.Size(e.Tags) +
		optStringMUS.Size(e.Position) +
		optStringMUS.Size(e.ScholarID)
}

func (expertEntryMUS) Skip(bs []byte) (n int, err error) {
	n, err = stringsMUS.Skip(bs)
	if err != nil {
		return n, err
	}
	var n1 int
	n1, err = optStringMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return n, err
	}
	n1, err = optStringMUS.Skip(bs[n:])
	return n + n1, err
}

var entriesMUS = ord.NewSliceSer[ExpertEntry](ExpertEntryMUS)

// ExpertRecordMUS serializes ExpertRecord values.
var ExpertRecordMUS = expertRecordMUS{}

type expertRecordMUS struct{}

func (expertRecordMUS) Marshal(r ExpertRecord, bs []byte) (n int) {
	n = ord.String.Marshal(r.Name, bs)
	n += ord.String.Marshal(r.Department, bs[n:])
	n += ord.String.Marshal(r.BaseURL, bs[n:])
	n += entriesMUS.Marshal(r.Entries, bs[n:])
	return n
}

func (expertRecordMUS) Unmarshal(bs []byte) (r ExpertRecord, n int, err error) {
	r.Name, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return r, n, err
	}
	var n1 int
	r.Department, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return r, n, err
	}
	r.BaseURL, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return r, n, err
	}
	r.Entries, n1, err = entriesMUS.Unmarshal(bs[n:])
	n += n1
	return r, n, err
}

func (expertRecordMUS) Size(r ExpertRecord) int {
	return ord.String.Size(r.Name) +
		ord.String.Size(r.Department) +
		ord.String.Size(r.BaseURL) +
		entriesMUS.Size(r.Entries)
}

func (expertRecordMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	for i := 0; i < 3; i++ {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return n, err
		}
	}
	n1, err = entriesMUS.Skip(bs[n:])
	return n + n1, err
}
