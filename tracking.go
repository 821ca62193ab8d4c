package arimage

// TrackedImage is a reference image currently detected in the camera feed.
type TrackedImage struct {
	// Name is the reference image name, e.g. "group1-red.png".
	Name string
	// Index is stable for the lifetime of the image database.
	Index int
	// ExtentX and ExtentZ are the physical size of the image in meters.
	// ExtentZ is the image's second extent (its extentY), named after the
	// local axis it lies along in the anchor frame.
	ExtentX float32
	ExtentZ float32
}

// Anchor is a tracked pose attached to a recognized image.
type Anchor interface {
	Pose() Pose
}

// StaticAnchor is an Anchor with a fixed pose.
type StaticAnchor Pose

// Pose returns the fixed pose.
func (a StaticAnchor) Pose() Pose { return Pose(a) }
