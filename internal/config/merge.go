package config

// Merge applies layers over base in order; later layers win.
func Merge(base Settings, layers ...Config) Settings {
	out := base
	out.Server.AllowOrigins = cloneStrings(base.Server.AllowOrigins)
	for _, layer := range layers {
		out.Server.Addr = ResolveAndTrim(out.Server.Addr, layer.Server.Addr)
		out.Server.AllowOrigins = ResolveStrings(out.Server.AllowOrigins, layer.Server.AllowOrigins)
		out.Server.Open = ResolveBool(out.Server.Open, layer.Server.Open)

		out.Client.BaseURL = ResolveAndTrim(out.Client.BaseURL, layer.Client.BaseURL)
		out.Client.Timeout = ResolveDuration(out.Client.Timeout, layer.Client.Timeout)

		out.AI.APIKey = ResolveAndTrim(out.AI.APIKey, layer.AI.APIKey)
		out.AI.BaseURL = ResolveAndTrim(out.AI.BaseURL, layer.AI.BaseURL)
		out.AI.Model = ResolveAndTrim(out.AI.Model, layer.AI.Model)
		out.AI.Timeout = ResolveDuration(out.AI.Timeout, layer.AI.Timeout)

		out.UI.Output = ResolveAndTrim(out.UI.Output, layer.UI.Output)
		out.UI.Color = ResolveAndTrim(out.UI.Color, layer.UI.Color)
		out.UI.Background = ResolveAndTrim(out.UI.Background, layer.UI.Background)
	}
	if out.UI.Output == "" {
		out.UI.Output = "table"
	}
	if out.UI.Color == "" {
		out.UI.Color = "auto"
	}
	return out
}
