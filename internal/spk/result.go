package spk

import "fmt"

// Record is one ranked student in the response.
type Record struct {
	NIM       string  `json:"NIM"`
	Nama      string  `json:"Nama"`
	RataModul float64 `json:"Rata_Modul"`
	UTP       float64 `json:"UTP"`
	UAP       float64 `json:"UAP"`
	Keaktifan float64 `json:"Keaktifan"`
	SkorAkhir float64 `json:"Skor_Akhir"`
	Cluster   int     `json:"Cluster"`
}

// Centroid is a cluster center in raw criterion units.
type Centroid struct {
	RataModul float64 `json:"Rata_Modul"`
	UTP       float64 `json:"UTP"`
	UAP       float64 `json:"UAP"`
	Keaktifan float64 `json:"Keaktifan"`
}

// ClusterProfile summarizes one cluster label.
type ClusterProfile struct {
	Cluster  int      `json:"cluster"`
	Size     int      `json:"size"`
	Centroid Centroid `json:"centroid"`
}

// Result is the response envelope of one ranking run.
type Result struct {
	Status        string           `json:"status"`
	Insight       string           `json:"insight"`
	Data          []Record         `json:"data"`
	Clusters      []ClusterProfile `json:"clusters"`
	ModuleColumns []string         `json:"module_columns"`
	RunID         string           `json:"run_id,omitempty"`
}

// Assemble projects ranked, clustered students into a Result, keeping their order.
func Assemble(students []Student, c Clustering, modules []string) Result {
	res := Result{
		Status:        "success",
		Insight:       Insight(len(students)),
		Data:          make([]Record, 0, len(students)),
		Clusters:      make([]ClusterProfile, len(c.Centroids)),
		ModuleColumns: modules,
	}
	for _, s := range students {
		res.Data = append(res.Data, Record{
			NIM:       s.NIM,
			Nama:      s.Nama,
			RataModul: s.RataModul,
			UTP:       s.UTP,
			UAP:       s.UAP,
			Keaktifan: s.Keaktifan,
			SkorAkhir: s.SkorAkhir,
			Cluster:   s.Cluster,
		})
	}
	for j, ctr := range c.Centroids {
		res.Clusters[j] = ClusterProfile{
			Cluster:  j,
			Centroid: Centroid{RataModul: ctr[0], UTP: ctr[1], UAP: ctr[2], Keaktifan: ctr[3]},
		}
	}
	for _, l := range c.Labels {
		res.Clusters[l].Size++
	}
	return res
}

// Insight is the human-readable summary line of a run.
func Insight(n int) string {
	return fmt.Sprintf("Data berhasil diproses. Dari %d praktikan, model mengelompokkan mereka ke dalam %d profil berdasarkan bobot yang Anda tentukan.", n, NumClusters)
}
