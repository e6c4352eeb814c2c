// Package segment implements region growing and marker-based watershed
// segmentation together with the binary morphology, Otsu thresholding,
// Euclidean distance transform and connected-component labeling that the
// watershed pipeline is built from.
//
// Binary masks are single-channel raster images holding 0 or 255. Label
// maps are row-major []int32 slices the size of the source image.
package segment
