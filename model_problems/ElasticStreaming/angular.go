package ElasticStreaming

// AngularPattern is sin(2 theta) in Cartesian form, undefined at the origin
func AngularPattern(x, y float64) float64 {
	return 2 * x * y / (x*x + y*y)
}
