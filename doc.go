// Package gpplot renders visual summaries of fitted predictive models,
// typically Gaussian processes, on top of gonum.org/v1/plot.
//
// A model is anything that can summarize itself at a set of evaluation
// points with a pointwise mean and (optionally) a pointwise variance,
// see the Summarizable interface. Given such a model and a matrix of
// evaluation points, Render produces one or two panels depending on how
// many covariates are selected:
//   - 1 covariate   A line plot of the mean with an optional mean ± k·σ
//     confidence band and an optional scatter layer of the
//     model's observed training data.
//   - 2 covariates  A heatmap of the mean on a diverging color scale
//     centered on the midpoint of the mean's range, with
//     contour lines, plus an optional second heatmap of
//     the variance on a sequential scale.
//
// Any other number of covariates is an error, not an approximation.
//
// # Panels
//
// A Panel is a value holding a stack of layers. Panels are never mutated
// after they are built: composing operations like With return a new
// Panel, and Plot builds a fresh *plot.Plot each time it is called.
// The one or two panels of a render are held in a Panels pair which can
// be drawn side by side onto a draw.Canvas.
//
// # Heteroscedastic models
//
// A model wrapping an inner base model and supplying its own, typically
// input dependent, variance can be drawn with RenderHeteroscedastic.
// The base model's plot is rendered unchanged and the wrapping model's
// variance is layered on top as an accent colored band, visually
// separating structural from heteroscedastic uncertainty.
package gpplot
