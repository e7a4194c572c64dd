package kibana

// Option configures an Axis during construction. Missing options take
// documented defaults: no ordering means a categorical axis, no panels
// means a single panel backed by the target surface, and the default
// formatter prints the category string or a "2006-01-02 15:04" timestamp.
//
// Example:
//
//	axis, err := kibana.New(root,
//	    kibana.WithOrdering(kibana.Ordering{Temporal: true, Min: from, Max: to}),
//	    kibana.WithFormatter(func(t kibana.Tick) string {
//	        return t.Time.Format("15:04")
//	    }),
//	)
type Option func(*axisOptions)

// axisOptions holds optional configuration gathered before an Axis is built.
type axisOptions struct {
	categories      []string
	ordering        *Ordering
	formatter       Formatter
	attrs           Attributes
	validator       DimensionValidator
	panels          []Panel
	chartTitles     []Title
	spacerWrapper   Surface
	spacerContainer Surface
}

// WithCategories sets the ordered categorical keys. Order is significant:
// it defines left-to-right tick order. Ignored when a temporal ordering is
// supplied.
func WithCategories(values []string) Option {
	return func(o *axisOptions) {
		o.categories = values
	}
}

// WithOrdering supplies temporal ordering metadata. An ordering with
// Temporal set selects the continuous time scale and the collision-filter
// label strategy for every render.
func WithOrdering(ord Ordering) Option {
	return func(o *axisOptions) {
		o.ordering = &ord
	}
}

// WithFormatter sets the tick-label formatter. The formatter must be pure;
// it is called once per tick per render and again during collision
// filtering.
func WithFormatter(f Formatter) Option {
	return func(o *axisOptions) {
		o.formatter = f
	}
}

// WithAttributes seeds the axis attribute bag. Rotation state and label
// height are recomputed on every render, so overrides only matter to
// callers reading Attributes before the first render.
func WithAttributes(attrs Attributes) Option {
	return func(o *axisOptions) {
		o.attrs = attrs
	}
}

// WithValidator substitutes the dimension-validation capability used
// before a scale is built. The default rejects non-positive dimensions.
func WithValidator(v DimensionValidator) Option {
	return func(o *axisOptions) {
		if v != nil {
			o.validator = v
		}
	}
}

// WithPanels supplies the explicit list of sibling panels to render and
// synchronize. All panels share the target surface as their parent; its
// width is measured once per render and divided evenly between them.
func WithPanels(panels ...Panel) Option {
	return func(o *axisOptions) {
		o.panels = panels
	}
}

// WithChartTitles supplies chart-level title rows to fit during layout
// synchronization, independent of the per-panel titles.
func WithChartTitles(titles ...Title) Option {
	return func(o *axisOptions) {
		o.chartTitles = titles
	}
}

// WithYAxisSpacer wires the spacer geometry: wrapper is the y-axis wrapper
// whose rendered height drives the spacer, container is where the spacer
// block is created. The block is created once on first render and reused
// thereafter.
func WithYAxisSpacer(wrapper, container Surface) Option {
	return func(o *axisOptions) {
		o.spacerWrapper = wrapper
		o.spacerContainer = container
	}
}
