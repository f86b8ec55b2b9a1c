package layout

import "sort"

// Cluster is a run of sorted values with no internal gap above the threshold
type Cluster struct {
	Values   []float64
	Centroid float64
}

// Min returns the smallest value in the cluster
func (c Cluster) Min() float64 {
	return c.Values[0]
}

// Max returns the largest value in the cluster
func (c Cluster) Max() float64 {
	return c.Values[len(c.Values)-1]
}

// ClusterByGap sorts values and starts a new cluster whenever the distance
// to the previous value exceeds minGap. Each cluster's centroid is the mean
// of its members. The input slice is not modified.
func ClusterByGap(values []float64, minGap float64) []Cluster {
	if len(values) == 0 {
		return nil
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var clusters []Cluster
	current := []float64{sorted[0]}
	for i := 1; i < len(sorted); i++ {
		if sorted[i]-sorted[i-1] > minGap {
			clusters = append(clusters, newCluster(current))
			current = []float64{sorted[i]}
		} else {
			current = append(current, sorted[i])
		}
	}
	clusters = append(clusters, newCluster(current))

	return clusters
}

func newCluster(values []float64) Cluster {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return Cluster{
		Values:   values,
		Centroid: sum / float64(len(values)),
	}
}
