package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// CandidateMUS is the MUS format serializer for Candidate. Fields are
// encoded in declaration order; changing the order or the field set is a
// storage format break.
var CandidateMUS = candidateMUS{}

type candidateMUS struct{}

func (candidateMUS) Marshal(c Candidate, bs []byte) (n int) {
	n = ord.String.Marshal(c.ID, bs)
	n += ord.String.Marshal(c.Label, bs[n:])
	n += ord.String.Marshal(c.Value, bs[n:])
	n += ord.String.Marshal(c.Category, bs[n:])
	n += ord.String.Marshal(c.Description, bs[n:])
	n += varint.Float64.Marshal(c.Popularity, bs[n:])
	n += ord.Bool.Marshal(c.Recent, bs[n:])
	n += ord.Bool.Marshal(c.Trending, bs[n:])
	return n
}

func (candidateMUS) Unmarshal(bs []byte) (c Candidate, n int, err error) {
	var n1 int
	c.ID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	c.Label, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.Value, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.Category, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.Popularity, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.Recent, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.Trending, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	return
}

func (candidateMUS) Size(c Candidate) (size int) {
	size = ord.String.Size(c.ID)
	size += ord.String.Size(c.Label)
	size += ord.String.Size(c.Value)
	size += ord.String.Size(c.Category)
	size += ord.String.Size(c.Description)
	size += varint.Float64.Size(c.Popularity)
	size += ord.Bool.Size(c.Recent)
	size += ord.Bool.Size(c.Trending)
	return size
}

func (candidateMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	for i := 0; i < 5; i++ {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	for i := 0; i < 2; i++ {
		n1, err = ord.Bool.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}
