package htmlreport

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Churn Prediction - Actionable Recommendations Report</title>
<style>
  body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 20px; background-color: #f5f5f5; color: #333; }
  .container { max-width: 1200px; margin: 0 auto; background-color: white; border-radius: 10px; box-shadow: 0 4px 6px rgba(0,0,0,0.1); overflow: hidden; }
  .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 30px; text-align: center; }
  .header h1 { margin: 0; font-size: 2.5em; font-weight: 300; }
  .header p { margin: 10px 0 0 0; font-size: 1.1em; opacity: 0.9; }
  .summary { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 20px; padding: 30px; background-color: #f8f9fa; }
  .summary-card { background: white; padding: 20px; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); text-align: center; }
  .summary-card h3 { margin: 0 0 10px 0; color: #666; font-size: 0.9em; text-transform: uppercase; letter-spacing: 1px; }
  .summary-card .value { font-size: 2em; font-weight: bold; color: #333; }
  .critical { color: #dc3545; }
  .recommendations { padding: 30px; }
  .recommendations h2 { margin: 0 0 30px 0; color: #333; border-bottom: 2px solid #667eea; padding-bottom: 10px; }
  .customer-card { background: white; border: 1px solid #e9ecef; border-radius: 8px; margin-bottom: 20px; overflow: hidden; }
  .customer-header { padding: 20px; background-color: #f8f9fa; border-bottom: 1px solid #e9ecef; display: grid; grid-template-columns: 1fr auto auto auto; gap: 20px; align-items: center; }
  .customer-id { font-weight: bold; font-size: 1.1em; }
  .urgency-badge { padding: 5px 12px; border-radius: 20px; font-size: 0.8em; font-weight: bold; text-transform: uppercase; }
  .urgency-critical { background-color: #dc3545; color: white; }
  .urgency-high { background-color: #fd7e14; color: white; }
  .urgency-medium { background-color: #ffc107; color: #333; }
  .urgency-low { background-color: #28a745; color: white; }
  .churn-prob { font-weight: bold; font-size: 1.1em; }
  .revenue-risk { color: #dc3545; font-weight: bold; }
  .customer-details { padding: 20px; display: grid; grid-template-columns: 1fr 1fr; gap: 20px; }
  .detail-group h4 { margin: 0 0 10px 0; color: #666; font-size: 0.9em; text-transform: uppercase; }
  .detail-item { margin-bottom: 5px; }
  .recommendation-text { grid-column: 1 / -1; background-color: #e3f2fd; padding: 15px; border-radius: 5px; border-left: 4px solid #2196f3; margin-top: 15px; }
  .recommendation-text h4 { margin: 0 0 10px 0; color: #1976d2; }
  .drift-analysis { padding: 30px; background-color: #fff3cd; border-left: 4px solid #ffc107; margin-bottom: 30px; }
  .warning-list { list-style-type: none; padding: 0; }
  .warning-item { background-color: #f8d7da; color: #721c24; padding: 10px; margin-bottom: 10px; border-radius: 5px; border-left: 4px solid #dc3545; }
  .no-drift-message { background-color: #d4edda; color: #155724; padding: 15px; border-radius: 5px; border-left: 4px solid #28a745; }
  .visualization-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(400px, 1fr)); gap: 20px; margin-top: 20px; }
  .visualization-item { background: white; padding: 15px; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
  .visualization-item h4 { margin: 0 0 15px 0; color: #333; text-align: center; }
  .footer { background-color: #333; color: white; text-align: center; padding: 20px; font-size: 0.9em; }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <h1>Churn Prediction Report</h1>
    <p>Actionable Recommendations for Customer Retention</p>
    <p>Generated on {{.GeneratedAt.Format "January 2, 2006 at 3:04 PM"}}</p>
    <p>This report analyzes the top {{.TotalCustomers}} highest-risk customers from your dataset.</p>
  </div>

  <div class="summary">
    <div class="summary-card">
      <h3>Top-K High-Risk Customers</h3>
      <div class="value">{{.TotalCustomers}}</div>
    </div>
    <div class="summary-card">
      <h3>Critical Cases</h3>
      <div class="value critical">{{.CriticalCases}}</div>
      <div style="font-size: 0.8em; color: #666;">{{pct .CriticalShare}} of high-risk</div>
    </div>
    <div class="summary-card">
      <h3>Total Revenue at Risk</h3>
      <div class="value">{{money .TotalRevenueAtRisk}}</div>
      <div style="font-size: 0.8em; color: #666;">Annual potential loss</div>
    </div>
    <div class="summary-card">
      <h3>Average Churn Probability</h3>
      <div class="value">{{pct .AvgChurnProbability}}</div>
      <div style="font-size: 0.8em; color: #666;">In high-risk group</div>
    </div>
  </div>

  {{if .Drift}}
  <div class="drift-analysis">
    {{if .Drift.Detected}}
    <h2>Data Drift Analysis</h2>
    <ul class="warning-list">
      {{range .Drift.Warnings}}<li class="warning-item">{{.}}</li>{{end}}
    </ul>
    {{else}}
    <h2>Data Drift Analysis</h2>
    <div class="no-drift-message">
      <p>No significant data drift detected. The new data appears consistent with the training baseline.</p>
    </div>
    {{end}}
    {{if .Drift.ScoreStrip}}
    <div class="visualization-item" style="margin-top: 20px;">
      <h4>Feature Drift Summary</h4>
      {{.Drift.ScoreStrip}}
    </div>
    {{end}}
    {{if .Drift.Charts}}
    <h3>Distribution Comparisons</h3>
    <div class="visualization-grid">
      {{range .Drift.Charts}}
      <div class="visualization-item">
        <h4>{{.Title}}</h4>
        {{.SVG}}
      </div>
      {{end}}
    </div>
    {{end}}
  </div>
  {{end}}

  <div class="recommendations">
    <h2>Individual Customer Recommendations</h2>
    {{range .Recommendations}}
    <div class="customer-card">
      <div class="customer-header">
        <div class="customer-id">Customer: {{.CustomerID}}</div>
        <div class="urgency-badge urgency-{{lower (printf "%s" .UrgencyLevel)}}">{{.UrgencyLevel}}</div>
        <div class="churn-prob">{{printf "%.2f" .ChurnProbability}}% Risk</div>
        <div class="revenue-risk">{{money .RevenueAtRisk}}/year</div>
      </div>
      <div class="customer-details">
        <div class="detail-group">
          <h4>Account Information</h4>
          <div class="detail-item"><strong>Contract:</strong> {{.ContractType}}</div>
          <div class="detail-item"><strong>Tenure:</strong> {{printf "%.0f" .TenureMonths}} months</div>
          <div class="detail-item"><strong>Monthly Charges:</strong> {{money .MonthlyCharges}}</div>
        </div>
        <div class="detail-group">
          <h4>Service Details</h4>
          <div class="detail-item"><strong>Internet:</strong> {{.InternetService}}</div>
          <div class="detail-item"><strong>Payment:</strong> {{.PaymentMethod}}</div>
        </div>
        <div class="recommendation-text">
          <h4>Recommended Actions</h4>
          <p>{{.Recommendation}}</p>
        </div>
      </div>
    </div>
    {{end}}
  </div>

  <div class="footer">
    <p>This report was generated by the Churn Prediction System</p>
    <p>For questions or support, contact your data science team</p>
  </div>
</div>
</body>
</html>
`
