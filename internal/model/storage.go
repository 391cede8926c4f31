package model

// Storage buckets, one per image-bearing resource category. Uploads are
// accepted only into these.
const (
	BucketReleaseCovers = "release-covers"
	BucketCharts        = "charts"
	BucketMerch         = "merch"
)

// AllowedBucket reports whether name is one of the accepted upload buckets.
func AllowedBucket(name string) bool {
	switch name {
	case BucketReleaseCovers, BucketCharts, BucketMerch:
		return true
	}
	return false
}
