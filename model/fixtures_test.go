package model

// account is the reference model: a generated key, a concurrency token, an
// ordered column, a plain column and a read-only column.
type account struct {
	ID       int    `model:"key,generated=identity"`
	Version  int    `model:"concurrency"`
	Name     string `model:"order=0"`
	Note     string
	Computed string `reflect:"readonly"`
}

type keyed struct {
	Key1   int `model:"key,order=1"`
	Key2   int `model:"key"`
	Key3   int `model:"key,order=0"`
	Key4   int `model:"key"`
	NonKey int `model:"order=0"`
	Hidden int `model:"-"`
}

type generatedModel struct {
	Identity1 int `model:"generated=identity"`
	Identity2 int `model:"generated=identity,order=0"`
	Computed1 int `model:"generated=computed"`
	Computed2 int `model:"generated=computed,order=1"`
	Plain     int `model:"generated=none"`
	Hidden    int `model:"-"`
}

type base struct {
	Created string `model:"order=2"`
	Updated string `model:"concurrency"`
}

// mixed combines every flag with and without read-only and order, plus
// inherited fields from an embedded struct.
type mixed struct {
	base

	Zeta     int    `model:"order=1"`
	Alpha    int    `model:"order=1"`
	KeyRO    int    `model:"key,order=0" reflect:"readonly"`
	KeyRW    int    `model:"key"`
	GenRO    int    `model:"generated=computed" reflect:"readonly"`
	GenKey   int    `model:"key,generated=identity"`
	TokenRO  []byte `model:"concurrency" reflect:"readonly"`
	Token    []byte `model:"concurrency,order=5"`
	Plain    string
	ReadOnly string `reflect:"readonly"`
	Ignored  string `model:"-"`
	Skipped  string `reflect:"-"`
}

type tabled struct {
	ID int `model:"key"`
}

func (tabled) Table() Table { return Table{Name: "accounts", Schema: "billing"} }

type untabled struct {
	ID int
}

type badOrder struct {
	ID int `model:"order=first"`
}

type badOption struct {
	ID int `model:"primary"`
}

type badGenerated struct {
	ID int `model:"generated=sometimes"`
}
