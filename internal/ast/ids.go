package ast

type (
	FileID    uint32
	DeclID    uint32
	ExprID    uint32
	TypeSynID uint32
)

const (
	NoFileID    FileID    = 0
	NoDeclID    DeclID    = 0
	NoExprID    ExprID    = 0
	NoTypeSynID TypeSynID = 0
)

func (id FileID) IsValid() bool    { return id != NoFileID }
func (id DeclID) IsValid() bool    { return id != NoDeclID }
func (id ExprID) IsValid() bool    { return id != NoExprID }
func (id TypeSynID) IsValid() bool { return id != NoTypeSynID }
