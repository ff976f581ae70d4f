package go3x3

import (
	"github.com/gogo/protobuf/proto"
)

// CatalogState is the header record persisted by a pattern Catalog,
// carrying the format version and the per-length pattern counters.
//
// Marshal with proto.Marshal / proto.Unmarshal: defining Marshal methods
// here would make gogo delegate right back to them.
type CatalogState struct {
	MajorVers   int32    `protobuf:"varint,1,opt,name=major_vers,proto3" json:"major_vers,omitempty"`
	MinorVers   int32    `protobuf:"varint,2,opt,name=minor_vers,proto3" json:"minor_vers,omitempty"`
	NumPatterns []uint64 `protobuf:"varint,3,rep,packed,name=num_patterns,proto3" json:"num_patterns,omitempty"`
}

func (m *CatalogState) Reset()         { *m = CatalogState{} }
func (m *CatalogState) String() string { return proto.CompactTextString(m) }
func (*CatalogState) ProtoMessage()    {}
