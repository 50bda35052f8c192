package fixed

func Mean(points []Point) Point {
	if len(points) == 0 {
		return Zero
	}
	sum := Zero
	for _, point := range points {
		sum = sum.Add(point)
	}
	return sum.DivInt(len(points))
}

func StdDev(points []Point, mean Point) Point {
	if len(points) <= 1 {
		return Zero
	}

	sum := Zero
	for _, point := range points {
		diff := point.Sub(mean)
		sum = sum.Add(diff.Mul(diff))
	}

	return sum.DivInt(len(points)).Sqrt()
}

func SampleStdDev(points []Point, mean Point) Point {
	if len(points) <= 1 {
		return Zero
	}

	sum := Zero
	for _, point := range points {
		diff := point.Sub(mean)
		sum = sum.Add(diff.Mul(diff))
	}

	return sum.DivInt(len(points) - 1).Sqrt()
}

func Variance(points []Point, mean Point) Point {
	if len(points) <= 1 {
		return Zero
	}

	sum := Zero
	for _, point := range points {
		diff := point.Sub(mean)
		sum = sum.Add(diff.Mul(diff))
	}

	return sum.DivInt(len(points))
}

func SampleVariance(points []Point, mean Point) Point {
	if len(points) <= 1 {
		return Zero
	}

	sum := Zero
	for _, point := range points {
		diff := point.Sub(mean)
		sum = sum.Add(diff.Mul(diff))
	}

	return sum.DivInt(len(points) - 1)
}

func Min(points []Point) Point {
	if len(points) == 0 {
		panic("empty input")
	}
	minVal := points[0]
	for _, point := range points[1:] {
		if point.Lt(minVal) {
			minVal = point
		}
	}
	return minVal
}

func Max(points []Point) Point {
	if len(points) == 0 {
		panic("empty input")
	}
	maxVal := points[0]
	for _, point := range points[1:] {
		if point.Gt(maxVal) {
			maxVal = point
		}
	}
	return maxVal
}
