package spk

// Canonical column names. Downstream stages look fields up by these exact names.
const (
	ColNama      = "Nama"
	ColNIM       = "NIM"
	ColUTP       = "UTP"
	ColUAP       = "UAP"
	ColKeaktifan = "Keaktifan"
	ColRataModul = "Rata_Modul"
	ColSkorAkhir = "Skor_Akhir"
)

// NumClusters is the fixed number of profiles students are partitioned into.
const NumClusters = 3

// Table is an uploaded sheet before any interpretation: a header row plus
// string cells. Rows may be shorter than the header.
type Table struct {
	Header []string
	Rows   [][]string
}

// Weights are the SAW weights supplied per request. They are applied as-is.
type Weights struct {
	Modul     float64 `json:"w_modul"`
	UTP       float64 `json:"w_utp"`
	UAP       float64 `json:"w_uap"`
	Keaktifan float64 `json:"w_keaktifan"`
}

// Student is one normalized input row plus the metrics derived from it.
type Student struct {
	NIM     string
	Nama    string
	Modules []float64

	UTP       float64
	UAP       float64
	Keaktifan float64

	RataModul     float64
	NormModul     float64
	NormUTP       float64
	NormUAP       float64
	NormKeaktifan float64
	SkorAkhir     float64

	Rank    int // 1-based, assigned by Rank
	Cluster int
}

// features is the raw 4-dimensional vector used for clustering.
func (s Student) features() []float64 {
	return []float64{s.RataModul, s.UTP, s.UAP, s.Keaktifan}
}
