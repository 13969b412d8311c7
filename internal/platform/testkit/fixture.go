package testkit

// WorldBankCSV is a small country-year indicator table shaped like the
// World Bank export the service reads in production
// Blank cells are missing values
//
// Notable rows
//   - United States GDP 25e12 (2022) and 27e12 (2023)
//   - Brazil unemployment missing in 2020
//   - Japan has no 2021 row
//   - Public debt for Japan exceeds the 200 gauge scale
//   - Interest rate is missing for every country in 2023
const WorldBankCSV = `country_name,year,GDP (Current USD),GDP per Capita (Current USD),Gross National Income (USD),Inflation (CPI %),"Inflation (GDP Deflator, %)",Government Revenue (% of GDP),Government Expense (% of GDP),Unemployment Rate (%),"Interest Rate (Real, %)",Current Account Balance (% GDP),GDP Growth (% Annual),Tax Revenue (% of GDP),Public Debt (% of GDP)
United States,2021,23000000000000,69000,23300000000000,4.7,4.5,31.2,37.9,5.4,-1.2,-3.6,5.9,11.2,128.1
United States,2022,25000000000000,75000,25400000000000,8.0,7.1,32.0,35.1,3.6,0.5,-3.8,2.1,12.0,121.4
United States,2023,27000000000000,80000,27400000000000,4.1,3.6,30.2,36.0,3.6,,-3.3,2.5,11.5,122.3
Brazil,2019,1870000000000,8900,1800000000000,3.7,4.2,30.1,36.5,12.0,2.1,-3.5,1.2,14.1,87.9
Brazil,2020,1450000000000,6800,1400000000000,3.2,4.8,28.0,43.1,,1.0,-1.9,-3.3,13.7,96.8
Brazil,2021,1650000000000,7700,1600000000000,8.3,10.2,31.4,35.8,13.2,-2.0,-2.8,4.8,14.6,90.1
Japan,2020,5050000000000,40100,5200000000000,0.0,0.9,35.9,47.2,2.8,0.4,2.9,-4.1,12.9,256.2
Japan,2022,4230000000000,33800,4400000000000,2.5,0.3,36.7,43.0,2.6,-0.9,2.1,1.0,13.4,260.1
Japan,2023,4210000000000,33900,4500000000000,3.3,3.9,36.2,41.2,2.6,,3.6,1.9,13.0,255.2
`
