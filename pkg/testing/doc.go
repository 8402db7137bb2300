// Package testing provides isolated widget testing without a platform
// surface. A WidgetTester mounts a widget tree and drives the same build,
// layout, pre-draw, and paint phases as the headless engine, recording
// each frame into a display list for inspection.
package testing
