package handlers

import (
    "strings"

    "clustergate.space/cg2-docs-web/internal/config"
    "clustergate.space/cg2-docs-web/internal/views"
)

// analyticsView surfaces the GA4 measurement id and the Tag Manager container
// to the layout. Ids without the expected "G-" / "GTM-" prefix are dropped
// rather than rendered into a script.
func analyticsView(cfg config.AnalyticsConfig) views.Analytics {
    return views.Analytics{
        GA4MeasurementID: trackingID(cfg.GA4MeasurementID, "G-"),
        GTMContainerID:   trackingID(cfg.GTMContainerID, "GTM-"),
    }
}

func trackingID(raw, prefix string) string {
    id := strings.TrimSpace(raw)
    if !strings.HasPrefix(id, prefix) || strings.ContainsAny(id, " \"'<>&?#/") {
        return ""
    }
    return id
}
