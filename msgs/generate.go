// Package msgs holds the Go types generated from the ROS definitions in
// definitions/. Run go generate here after editing a definition.
package msgs

//go:generate go run ../cmd/gengo --path definitions --out . pkg std_msgs vimbax_camera_msgs
